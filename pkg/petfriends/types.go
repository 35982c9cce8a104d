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
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
)

// Credentials identify a PetFriends account. They are only ever sent as
// headers on the key request and are not retained by the client.
type Credentials struct {
	Email    string
	Password string
}

// APIKey is the opaque token issued by the key endpoint.
type APIKey string

// Filter selects the scope of a pet listing.
type Filter string

const (
	// FilterAll lists every pet in the shelter.
	FilterAll Filter = ""
	// FilterMyPets lists only pets owned by the key holder.
	FilterMyPets Filter = "my_pets"
)

// Validate rejects anything other than the two scopes the service knows.
func (f Filter) Validate() error {
	switch f {
	case FilterAll, FilterMyPets:
		return nil
	}

	return fmt.Errorf("%w: %q", ErrInvalidFilter, string(f))
}

// Age is a pet's age as echoed by the service. It is sent as form text and
// usually comes back as a JSON string, but numbers are accepted too.
type Age string

func (a *Age) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*a = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decoding age: %w", err)
		}

		*a = Age(s)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decoding age: %w", err)
	}

	*a = Age(n.String())

	return nil
}

// NewPet carries the mutable text fields of a pet for create and update calls.
type NewPet struct {
	Name       string
	AnimalType string
	Age        string
}

// formData renders the pet as form fields.
func (p NewPet) formData() map[string]string {
	return map[string]string{
		"name":        p.Name,
		"animal_type": p.AnimalType,
		"age":         p.Age,
	}
}

// PetRecord is a pet as owned by the server.
type PetRecord struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	AnimalType string `json:"animal_type"`
	Age        Age    `json:"age"`
	PetPhoto   string `json:"pet_photo"`
	// UserID and CreatedAt are returned by the service but are not part
	// of the mutable record.
	UserID    string `json:"user_id,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// HasPhoto reports whether a photo is attached.
func (p *PetRecord) HasPhoto() bool {
	return p.PetPhoto != ""
}

// PetList is an ordered listing of pets.
type PetList struct {
	Pets []PetRecord `json:"pets"`
}

// IDs returns pet IDs in listing order.
func (l *PetList) IDs() []string {
	ids := make([]string, len(l.Pets))

	for i := range l.Pets {
		ids[i] = l.Pets[i].ID
	}

	return ids
}

// Contains reports whether a pet with the given ID is listed.
func (l *PetList) Contains(id string) bool {
	return slices.Contains(l.IDs(), id)
}

// Find returns the listed pet with the given ID.
func (l *PetList) Find(id string) (*PetRecord, bool) {
	i := slices.IndexFunc(l.Pets, func(p PetRecord) bool {
		return p.ID == id
	})
	if i < 0 {
		return nil, false
	}

	return &l.Pets[i], true
}

// AuthResult is the payload of a successful key request.
type AuthResult struct {
	Key APIKey `json:"key"`
}

// Empty is the payload of calls whose body carries no defined content.
type Empty struct{}

// Response is the uniform result of every call: the HTTP status and the body.
// Body is set only when the payload decoded as JSON into T, Raw always holds
// the bytes received so non-JSON error pages can still be inspected.
type Response[T any] struct {
	StatusCode int
	Header     http.Header
	Body       *T
	Raw        []byte
	// SchemaError is set when a ResponseValidator is configured and the
	// response does not conform to the API description.
	SchemaError error
}

func newResponse[T any](res *result) *Response[T] {
	r := &Response[T]{
		StatusCode:  res.statusCode,
		Header:      res.header,
		Raw:         res.body,
		SchemaError: res.schemaError,
	}

	if len(res.body) == 0 {
		return r
	}

	var body T
	if err := json.Unmarshal(res.body, &body); err == nil {
		r.Body = &body
	}

	return r
}

// OK reports whether the service answered 200.
func (r *Response[T]) OK() bool {
	return r.StatusCode == http.StatusOK
}

// Parsed reports whether the body was valid JSON of the expected shape.
func (r *Response[T]) Parsed() bool {
	return r.Body != nil
}

// Text returns the raw body.
func (r *Response[T]) Text() string {
	return string(r.Raw)
}

// Fields decodes the body as a generic JSON object, for asserting on the
// presence or absence of keys the typed body cannot express.
func (r *Response[T]) Fields() (map[string]any, bool) {
	var fields map[string]any
	if err := json.Unmarshal(r.Raw, &fields); err != nil || fields == nil {
		return nil, false
	}

	return fields, true
}
