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

var _ = Describe("Authentication", func() {
	Context("When requesting an API key", func() {
		Describe("Given valid credentials", func() {
			It("should return a non-empty key", func() {
				resp, err := client.GetAPIKey(ctx, config.Primary())
				Expect(err).NotTo(HaveOccurred())
				api.ExpectStatus(resp, http.StatusOK)

				Expect(resp.Body).NotTo(BeNil())
				Expect(resp.Body.Key).NotTo(BeEmpty())

				fields, ok := resp.Fields()
				Expect(ok).To(BeTrue())
				Expect(fields).To(HaveKey("key"))
			})

			It("should issue a key that is accepted by pet endpoints", func() {
				key := api.Authenticate(client, ctx, config.Primary())

				list := api.ListPets(client, ctx, key, petfriends.FilterMyPets)
				Expect(list.Pets).NotTo(BeNil())
			})
		})

		Describe("Given invalid credentials", func() {
			It("should reject a wrong password without a key", func() {
				resp, err := client.GetAPIKey(ctx, petfriends.Credentials{
					Email:    config.Email,
					Password: "wrong-" + api.GenerateTestID(),
				})
				Expect(err).NotTo(HaveOccurred())
				api.ExpectStatus(resp, http.StatusForbidden)

				if fields, ok := resp.Fields(); ok {
					Expect(fields).NotTo(HaveKey("key"))
				}
			})

			It("should reject an unknown account without a key", func() {
				resp, err := client.GetAPIKey(ctx, petfriends.Credentials{
					Email:    api.GenerateTestID() + "@example.com",
					Password: api.GenerateTestID(),
				})
				Expect(err).NotTo(HaveOccurred())
				api.ExpectStatus(resp, http.StatusForbidden)

				if resp.Parsed() {
					Expect(resp.Body.Key).To(BeEmpty())
				}
			})
		})

		Describe("Given an invalid API key", func() {
			It("should refuse pet listings", func() {
				resp, err := client.GetListOfPets(ctx, petfriends.APIKey(api.GenerateTestID()), petfriends.FilterAll)
				Expect(err).NotTo(HaveOccurred())
				api.ExpectStatus(resp, http.StatusForbidden)
				Expect(resp.Parsed()).To(BeFalse())
			})
		})
	})
})
