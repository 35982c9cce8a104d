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

var _ = Describe("Pet Photo", func() {
	var key petfriends.APIKey

	BeforeEach(func() {
		key = api.Authenticate(client, ctx, config.Primary())
	})

	Context("When setting the photo of my pet", func() {
		Describe("Given a pet without a photo", func() {
			It("should attach the photo", func() {
				pet := api.CreatePetWithCleanup(client, ctx, key, api.NewPetPayload().Build())
				Expect(pet.HasPhoto()).To(BeFalse())

				resp, err := client.SetPhoto(ctx, key, pet.ID, config.PhotoPath)
				Expect(err).NotTo(HaveOccurred())
				api.ExpectStatus(resp, http.StatusOK)

				Expect(resp.Body.ID).To(Equal(pet.ID))
				Expect(resp.Body.HasPhoto()).To(BeTrue())
				Expect(resp.Body.Name).To(Equal(pet.Name))
			})
		})

		Describe("Given a pet with a photo", func() {
			It("should replace the photo", func() {
				pet := api.CreatePetWithPhotoWithCleanup(client, ctx, key, api.NewPetPayload().Build(), config.PhotoPath)

				resp, err := client.SetPhoto(ctx, key, pet.ID, config.AltPhotoPath)
				Expect(err).NotTo(HaveOccurred())
				api.ExpectStatus(resp, http.StatusOK)

				Expect(resp.Body.HasPhoto()).To(BeTrue())
				Expect(resp.Body.PetPhoto).NotTo(Equal(pet.PetPhoto))
			})
		})
	})

	Context("When setting the photo of another account's pet", func() {
		It("should be refused", func() {
			secondary, ok := config.Secondary()
			if !ok {
				Skip("TEST_SECONDARY_EMAIL and TEST_SECONDARY_PASSWORD are not set")
			}

			pet := api.CreatePetWithCleanup(client, ctx, key, api.NewPetPayload().Build())
			otherKey := api.Authenticate(client, ctx, secondary)

			resp, err := client.SetPhoto(ctx, otherKey, pet.ID, config.PhotoPath)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(resp, http.StatusInternalServerError)
		})
	})
})
