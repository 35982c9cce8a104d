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

package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nscaledev/petfriends/pkg/petfriends"
	"github.com/nscaledev/petfriends/test/api"
)

var _ = Describe("Pet Creation", func() {
	var key petfriends.APIKey

	BeforeEach(func() {
		key = api.Authenticate(client, ctx, config.Primary())
	})

	Context("When adding a pet with a photo", func() {
		Describe("Given valid data", func() {
			It("should echo the pet and attach the photo", func() {
				payload := api.NewPetPayload().
					WithName("Пуха").
					WithAnimalType("Кошка").
					WithAge("9").
					Build()

				pet := api.CreatePetWithPhotoWithCleanup(client, ctx, key, payload, config.PhotoPath)

				api.VerifyPetFields(&pet, payload)
				Expect(pet.HasPhoto()).To(BeTrue())
			})

			It("should list the new pet among my pets", func() {
				pet := api.CreatePetWithPhotoWithCleanup(client, ctx, key, api.NewPetPayload().Build(), config.PhotoPath)

				list := api.ListPets(client, ctx, key, petfriends.FilterMyPets)
				listed, ok := list.Find(pet.ID)
				Expect(ok).To(BeTrue())
				Expect(listed.Name).To(Equal(pet.Name))
			})
		})
	})

	Context("When creating a pet without a photo", func() {
		Describe("Given valid data", func() {
			It("should echo the pet with no photo", func() {
				payload := api.NewPetPayload().
					WithName("Фаби").
					WithAnimalType("Мейн кун").
					WithAge("3").
					Build()

				pet := api.CreatePetWithCleanup(client, ctx, key, payload)

				api.VerifyPetFields(&pet, payload)
				Expect(pet.PetPhoto).To(BeEmpty())
			})
		})

		Describe("Given mixed case text", func() {
			It("should not normalise the fields", func() {
				payload := api.NewPetPayload().
					WithName("ПуХа " + api.GenerateTestID()).
					WithAnimalType("кОшКа").
					Build()

				pet := api.CreatePetWithCleanup(client, ctx, key, payload)

				api.VerifyPetFields(&pet, payload)
			})
		})
	})

	Context("When creating a pet with an invalid API key", func() {
		It("should be refused", func() {
			resp, err := client.CreatePetSimple(ctx, petfriends.APIKey(api.GenerateTestID()), api.NewPetPayload().Build())
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(resp, http.StatusForbidden)
		})
	})
})
