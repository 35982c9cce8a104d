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
	"net/http/httptest"
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nscaledev/petfriends/pkg/petfriends"
	"github.com/nscaledev/petfriends/test/api"
)

var _ = Describe("Error Handling and Edge Cases", func() {
	Context("When the test itself is misconfigured", func() {
		Describe("Given an unreachable service", func() {
			It("should return a transport error", func() {
				server := httptest.NewServer(http.NotFoundHandler())
				url := server.URL
				server.Close()

				resp, err := petfriends.New(url).GetAPIKey(ctx, config.Primary())
				Expect(err).To(HaveOccurred())
				Expect(resp).To(BeNil())
			})
		})

		Describe("Given a missing photo file", func() {
			It("should return a file error without creating a pet", func() {
				key := api.Authenticate(client, ctx, config.Primary())
				before := api.PetIDSet(api.ListPets(client, ctx, key, petfriends.FilterMyPets))

				resp, err := client.AddNewPet(ctx, key, api.NewPetPayload().Build(), filepath.Join(GinkgoT().TempDir(), "missing.jpg"))
				Expect(err).To(MatchError(os.ErrNotExist))
				Expect(resp).To(BeNil())

				after := api.PetIDSet(api.ListPets(client, ctx, key, petfriends.FilterMyPets))
				Expect(api.SymmetricDifference(before, after)).To(BeEmpty())
			})
		})

		Describe("Given an unsupported filter", func() {
			It("should be rejected before sending", func() {
				_, err := client.GetListOfPets(ctx, "unused", petfriends.Filter("all_pets"))
				Expect(err).To(MatchError(petfriends.ErrInvalidFilter))
			})
		})
	})

	Context("When a spec runs", func() {
		It("should be bounded by the configured timeout", func() {
			if config.TestTimeout <= 0 {
				Skip("TEST_TIMEOUT is not set")
			}

			deadline, ok := ctx.Deadline()
			Expect(ok).To(BeTrue())
			Expect(time.Until(deadline)).To(BeNumerically("<=", config.TestTimeout))
		})
	})

	Context("When the service returns a non-JSON body", func() {
		It("should pass the body through raw", func() {
			resp, err := client.GetAPIKey(ctx, petfriends.Credentials{
				Email:    api.GenerateTestID(),
				Password: api.GenerateTestID(),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusForbidden))

			if !resp.Parsed() {
				Expect(resp.Raw).NotTo(BeEmpty())
			}
		})
	})
})
