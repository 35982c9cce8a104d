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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/spjmurray/go-util/pkg/set"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nscaledev/petfriends/pkg/petfriends"
)

// ExpectStatus asserts a response status, showing the raw body on failure,
// and that the response conforms to the API description.
func ExpectStatus[T any](resp *petfriends.Response[T], status int) {
	GinkgoHelper()

	Expect(resp).NotTo(BeNil())
	Expect(resp.StatusCode).To(Equal(status), "unexpected status, body: %s", resp.Text())
	Expect(resp.SchemaError).NotTo(HaveOccurred())
}

// Authenticate obtains an API key for the given account.
func Authenticate(client *petfriends.Client, ctx context.Context, credentials petfriends.Credentials) petfriends.APIKey {
	GinkgoHelper()

	resp, err := client.GetAPIKey(ctx, credentials)
	Expect(err).NotTo(HaveOccurred())
	ExpectStatus(resp, http.StatusOK)
	Expect(resp.Body).NotTo(BeNil())
	Expect(resp.Body.Key).NotTo(BeEmpty())

	return resp.Body.Key
}

// scheduleDelete deletes the pet when the spec ends, whether it passed or
// failed. Pets the spec already deleted are tolerated.
func scheduleDelete(client *petfriends.Client, key petfriends.APIKey, petID string) {
	DeferCleanup(func() {
		GinkgoWriter.Printf("Cleaning up pet: %s\n", petID)

		resp, err := client.DeletePet(context.Background(), key, petID)

		switch {
		case err != nil:
			GinkgoWriter.Printf("Warning: Failed to delete pet %s: %v\n", petID, err)
		case resp.StatusCode != http.StatusOK:
			GinkgoWriter.Printf("Pet %s not deleted (status: %d), assuming the spec removed it\n", petID, resp.StatusCode)
		default:
			GinkgoWriter.Printf("Successfully deleted pet: %s\n", petID)
		}
	})
}

// CreatePetWithCleanup creates a pet without a photo and schedules automatic cleanup.
func CreatePetWithCleanup(client *petfriends.Client, ctx context.Context, key petfriends.APIKey, pet petfriends.NewPet) petfriends.PetRecord {
	GinkgoHelper()

	resp, err := client.CreatePetSimple(ctx, key, pet)
	Expect(err).NotTo(HaveOccurred())
	ExpectStatus(resp, http.StatusOK)
	Expect(resp.Body).NotTo(BeNil())
	Expect(resp.Body.ID).NotTo(BeEmpty())

	GinkgoWriter.Printf("Created pet with ID: %s\n", resp.Body.ID)

	scheduleDelete(client, key, resp.Body.ID)

	return *resp.Body
}

// CreatePetWithPhotoWithCleanup creates a pet with a photo and schedules automatic cleanup.
func CreatePetWithPhotoWithCleanup(client *petfriends.Client, ctx context.Context, key petfriends.APIKey, pet petfriends.NewPet, photoPath string) petfriends.PetRecord {
	GinkgoHelper()

	resp, err := client.AddNewPet(ctx, key, pet, photoPath)
	Expect(err).NotTo(HaveOccurred())
	ExpectStatus(resp, http.StatusOK)
	Expect(resp.Body).NotTo(BeNil())
	Expect(resp.Body.ID).NotTo(BeEmpty())

	GinkgoWriter.Printf("Created pet with photo, ID: %s\n", resp.Body.ID)

	scheduleDelete(client, key, resp.Body.ID)

	return *resp.Body
}

// ListPets lists pets in the given scope, asserting success.
func ListPets(client *petfriends.Client, ctx context.Context, key petfriends.APIKey, filter petfriends.Filter) *petfriends.PetList {
	GinkgoHelper()

	resp, err := client.GetListOfPets(ctx, key, filter)
	Expect(err).NotTo(HaveOccurred())
	ExpectStatus(resp, http.StatusOK)
	Expect(resp.Body).NotTo(BeNil(), "list body is not a pet list: %s", resp.Text())

	return resp.Body
}

// PetIDSet returns the IDs of a listing as a set.
func PetIDSet(list *petfriends.PetList) set.Set[string] {
	return set.New[string](list.IDs()...)
}

// SymmetricDifference returns the members present in exactly one of a and b.
func SymmetricDifference(a, b set.Set[string]) []string {
	var out []string

	for id := range a.Difference(b).All() {
		out = append(out, id)
	}

	for id := range b.Difference(a).All() {
		out = append(out, id)
	}

	return out
}

// VerifyPetFields checks that a record echoes the payload verbatim.
func VerifyPetFields(record *petfriends.PetRecord, pet petfriends.NewPet) {
	GinkgoHelper()

	Expect(record).NotTo(BeNil())
	Expect(record.Name).To(Equal(pet.Name))
	Expect(record.AnimalType).To(Equal(pet.AnimalType))
	Expect(string(record.Age)).To(Equal(pet.Age))
}

// VerifyPetAbsent checks that a pet is not listed in the key holder's pets.
func VerifyPetAbsent(client *petfriends.Client, ctx context.Context, key petfriends.APIKey, petID string) {
	GinkgoHelper()

	list := ListPets(client, ctx, key, petfriends.FilterMyPets)
	Expect(list.IDs()).NotTo(ContainElement(petID), fmt.Sprintf("Expected pet %s to be absent", petID))
}
