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

package api

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/nscaledev/petfriends/pkg/petfriends"
)

func generateRandomName(prefix string) string {
	bytes := make([]byte, 4) // 8 hex characters
	_, _ = rand.Read(bytes)

	return fmt.Sprintf("%s-%s", prefix, hex.EncodeToString(bytes))
}

func GenerateTestID() string {
	return generateRandomName("test")
}

// PetPayloadBuilder builds pet payloads for testing.
type PetPayloadBuilder struct {
	pet petfriends.NewPet
}

// NewPetPayload creates a new pet payload builder with a unique name.
func NewPetPayload() *PetPayloadBuilder {
	return &PetPayloadBuilder{
		pet: petfriends.NewPet{
			Name:       generateRandomName("testautomation"),
			AnimalType: "Кошка",
			Age:        "3",
		},
	}
}

// WithName sets the pet name.
func (b *PetPayloadBuilder) WithName(name string) *PetPayloadBuilder {
	b.pet.Name = name
	return b
}

// WithAnimalType sets the animal type.
func (b *PetPayloadBuilder) WithAnimalType(animalType string) *PetPayloadBuilder {
	b.pet.AnimalType = animalType
	return b
}

// WithAge sets the age.
func (b *PetPayloadBuilder) WithAge(age string) *PetPayloadBuilder {
	b.pet.Age = age
	return b
}

// Build returns the completed pet payload.
func (b *PetPayloadBuilder) Build() petfriends.NewPet {
	return b.pet
}
