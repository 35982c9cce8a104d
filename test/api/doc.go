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

// Package api provides functional test utilities for the PetFriends API.
//
// # Client
//
// Suites talk to the service through the typed client in pkg/petfriends,
// constructed per spec by NewAPIClientWithConfig so no state leaks between
// tests. The client logs through GinkgoWriter and, when VALIDATE_RESPONSES is
// set, checks every response against the embedded API description.
//
// # Target Service
//
// When PETFRIENDS_EMAIL and PETFRIENDS_PASSWORD are set the suites run against
// PETFRIENDS_BASE_URL. Otherwise, or when USE_FAKE_SERVER is set, an in-memory
// fake service is started for the duration of the suite.
//
// # Fixtures
//
// Every pet a spec creates is deleted by DeferCleanup, so specs do not depend
// on each other or on the contents of the shelter.
package api
