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

package petfriends

import (
	"errors"
)

var (
	// ErrInvalidFilter is raised when a listing filter is not one of the
	// supported scopes.
	ErrInvalidFilter = errors.New("invalid pet filter")

	// ErrMissingPhoto is raised when a photo upload is given no path.
	ErrMissingPhoto = errors.New("photo path required")
)
