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
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nscaledev/petfriends/pkg/petfriends"
	"github.com/nscaledev/petfriends/test/api"
)

var _ = Describe("Boundary Value Testing", func() {
	var key petfriends.APIKey

	BeforeEach(func() {
		key = api.Authenticate(client, ctx, config.Primary())
	})

	Context("When submitting unusual data", func() {
		// The service performs no length validation, these specs document
		// that gap rather than a client defect.
		Describe("Given boundary value testing", func() {
			DescribeTable("should accept and echo long names verbatim",
				func(length int) {
					name := strings.Repeat("Я", length)

					pet := api.CreatePetWithCleanup(client, ctx, key, api.NewPetPayload().WithName(name).Build())
					Expect(pet.Name).To(Equal(name))
					Expect(len([]rune(pet.Name))).To(Equal(length))
				},
				Entry("at 250 characters", 250),
				Entry("at 255 characters", 255),
				Entry("at 1000 characters", 1000),
			)

			It("should echo special characters through the photo upload", func() {
				payload := api.NewPetPayload().
					WithName("!@#$%^&").
					WithAnimalType("!@#").
					WithAge("два").
					Build()

				pet := api.CreatePetWithPhotoWithCleanup(client, ctx, key, payload, config.PhotoPath)
				api.VerifyPetFields(&pet, payload)
				Expect(pet.HasPhoto()).To(BeTrue())
			})

			It("should echo a non-numeric age verbatim", func() {
				payload := api.NewPetPayload().WithAge("девять").Build()

				pet := api.CreatePetWithCleanup(client, ctx, key, payload)
				api.VerifyPetFields(&pet, payload)
			})
		})
	})
})
