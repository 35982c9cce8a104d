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
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nscaledev/petfriends/pkg/petfriends"
	"github.com/nscaledev/petfriends/test/api"
)

var _ = Describe("Pet Listing", func() {
	var key petfriends.APIKey

	BeforeEach(func() {
		key = api.Authenticate(client, ctx, config.Primary())
	})

	Context("When listing all pets", func() {
		Describe("Given a shelter with at least one pet", func() {
			It("should return a non-empty list", func() {
				api.CreatePetWithCleanup(client, ctx, key, api.NewPetPayload().Build())

				list := api.ListPets(client, ctx, key, petfriends.FilterAll)
				Expect(list.Pets).NotTo(BeEmpty())
			})
		})
	})

	Context("When listing my pets", func() {
		Describe("Given pets owned by the key holder", func() {
			It("should include every owned pet", func() {
				first := api.CreatePetWithCleanup(client, ctx, key, api.NewPetPayload().Build())
				second := api.CreatePetWithCleanup(client, ctx, key, api.NewPetPayload().Build())

				list := api.ListPets(client, ctx, key, petfriends.FilterMyPets)
				Expect(list.IDs()).To(ContainElements(first.ID, second.ID))

				for _, pet := range list.Pets {
					Expect(pet.ID).NotTo(BeEmpty())
				}
			})

			It("should return the same pets on consecutive reads", func() {
				api.CreatePetWithCleanup(client, ctx, key, api.NewPetPayload().Build())

				first := api.PetIDSet(api.ListPets(client, ctx, key, petfriends.FilterMyPets))
				second := api.PetIDSet(api.ListPets(client, ctx, key, petfriends.FilterMyPets))

				Expect(api.SymmetricDifference(first, second)).To(BeEmpty())
			})
		})

		Describe("Given pets owned by another account", func() {
			It("should not include them", func() {
				secondary, ok := config.Secondary()
				if !ok {
					Skip("TEST_SECONDARY_EMAIL and TEST_SECONDARY_PASSWORD are not set")
				}

				otherKey := api.Authenticate(client, ctx, secondary)
				foreign := api.CreatePetWithCleanup(client, ctx, otherKey, api.NewPetPayload().Build())

				list := api.ListPets(client, ctx, key, petfriends.FilterMyPets)
				Expect(list.IDs()).NotTo(ContainElement(foreign.ID))
			})
		})
	})
})
