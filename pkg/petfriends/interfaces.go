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
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=mock/interfaces.go -package=mock

// ClientInterface is the set of PetFriends operations. Every call returns the
// HTTP outcome as a Response and only errors on transport faults.
type ClientInterface interface {
	// GetAPIKey exchanges credentials for an API key.
	GetAPIKey(ctx context.Context, credentials Credentials) (*Response[AuthResult], error)
	// GetListOfPets lists pets in the given scope.
	GetListOfPets(ctx context.Context, key APIKey, filter Filter) (*Response[PetList], error)
	// AddNewPet creates a pet with a photo read from photoPath.
	AddNewPet(ctx context.Context, key APIKey, pet NewPet, photoPath string) (*Response[PetRecord], error)
	// CreatePetSimple creates a pet without a photo.
	CreatePetSimple(ctx context.Context, key APIKey, pet NewPet) (*Response[PetRecord], error)
	// SetPhoto attaches or replaces the photo of an existing pet.
	SetPhoto(ctx context.Context, key APIKey, petID, photoPath string) (*Response[PetRecord], error)
	// UpdatePetInfo replaces the text fields of an existing pet.
	UpdatePetInfo(ctx context.Context, key APIKey, petID string, pet NewPet) (*Response[PetRecord], error)
	// DeletePet removes a pet.
	DeletePet(ctx context.Context, key APIKey, petID string) (*Response[Empty], error)
}

var _ ClientInterface = (*Client)(nil)
