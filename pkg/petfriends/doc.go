/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package petfriends provides a typed client for the PetFriends pet shelter
// REST API.
//
// Every operation returns a Response carrying the HTTP status and body. HTTP
// failures such as 403 for bad credentials are ordinary results for the
// caller to assert on; an error is only returned when no HTTP exchange took
// place, e.g. the host is unreachable or a photo file cannot be opened.
//
// Bodies that are not JSON, such as HTML error pages, leave Response.Body nil
// and are available verbatim through Response.Raw.
package petfriends
