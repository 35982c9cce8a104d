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

var _ = Describe("Pet Deletion", func() {
	var key petfriends.APIKey

	BeforeEach(func() {
		key = api.Authenticate(client, ctx, config.Primary())
	})

	Context("When deleting my pet", func() {
		It("should remove it from my pets", func() {
			pet := api.CreatePetWithPhotoWithCleanup(client, ctx, key, api.NewPetPayload().WithName("Суперкот").WithAnimalType("кот").Build(), config.PhotoPath)

			resp, err := client.DeletePet(ctx, key, pet.ID)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(resp, http.StatusOK)

			api.VerifyPetAbsent(client, ctx, key, pet.ID)
		})

		It("should leave my other pets alone", func() {
			kept := api.CreatePetWithCleanup(client, ctx, key, api.NewPetPayload().Build())
			removed := api.CreatePetWithCleanup(client, ctx, key, api.NewPetPayload().Build())

			resp, err := client.DeletePet(ctx, key, removed.ID)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(resp, http.StatusOK)

			list := api.ListPets(client, ctx, key, petfriends.FilterMyPets)
			Expect(list.IDs()).To(ContainElement(kept.ID))
			Expect(list.IDs()).NotTo(ContainElement(removed.ID))
		})
	})

	Context("When deleting another account's pet", func() {
		// The service does not check ownership on delete. These specs
		// document that gap rather than a client defect.
		Describe("Given a missing ownership check", func() {
			It("should remove the pet from its owner's pets", func() {
				secondary, ok := config.Secondary()
				if !ok {
					Skip("TEST_SECONDARY_EMAIL and TEST_SECONDARY_PASSWORD are not set")
				}

				pet := api.CreatePetWithCleanup(client, ctx, key, api.NewPetPayload().Build())
				otherKey := api.Authenticate(client, ctx, secondary)

				resp, err := client.DeletePet(ctx, otherKey, pet.ID)
				Expect(err).NotTo(HaveOccurred())
				api.ExpectStatus(resp, http.StatusOK)

				api.VerifyPetAbsent(client, ctx, key, pet.ID)
			})
		})
	})
})
