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

// Package fake implements an in-memory PetFriends service for running the
// client and functional suites without network access.
package fake

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/nscaledev/petfriends/pkg/petfriends"
)

const (
	maxUploadSize = 10 << 20

	// The real service answers authentication failures with an HTML page.
	forbiddenPage = `<!doctype html>
<html lang=en>
<title>403 Forbidden</title>
<h1>Forbidden</h1>
<p>Please provide 'auth_key' Header</p>
`
	internalErrorPage = `<!doctype html>
<html lang=en>
<title>500 Internal Server Error</title>
<h1>Internal Server Error</h1>
<p>The server encountered an internal error and was unable to complete your request.</p>
`
)

var errMissingField = errors.New("missing field")

type account struct {
	password string
	key      petfriends.APIKey
}

// Server is an in-memory PetFriends service. The zero value is not usable,
// use New.
type Server struct {
	lock sync.RWMutex

	accounts map[string]*account
	owners   map[petfriends.APIKey]string
	// pets are held newest first, which is how the service lists them.
	pets []*petfriends.PetRecord

	now func() time.Time
}

// New returns a server that accepts the given accounts.
func New(accounts ...petfriends.Credentials) *Server {
	s := &Server{
		accounts: map[string]*account{},
		owners:   map[petfriends.APIKey]string{},
		now:      time.Now,
	}

	for _, a := range accounts {
		s.AddAccount(a)
	}

	return s
}

// AddAccount registers credentials and issues their key. Re-registering an
// email replaces its password but keeps the key.
func (s *Server) AddAccount(credentials petfriends.Credentials) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if a, ok := s.accounts[credentials.Email]; ok {
		a.password = credentials.Password
		return
	}

	key := petfriends.APIKey(strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", ""))

	s.accounts[credentials.Email] = &account{
		password: credentials.Password,
		key:      key,
	}
	s.owners[key] = credentials.Email
}

// Pets returns a copy of every stored pet, newest first.
func (s *Server) Pets() []petfriends.PetRecord {
	s.lock.RLock()
	defer s.lock.RUnlock()

	out := make([]petfriends.PetRecord, len(s.pets))

	for i, p := range s.pets {
		out[i] = *p
	}

	return out
}

// Handler returns the HTTP routes of the service.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/api/key", s.getAPIKey)

	r.Group(func(r chi.Router) {
		r.Use(s.authenticate)

		r.Get("/api/pets", s.listPets)
		r.Post("/api/pets", s.createPet)
		r.Post("/api/create_pet_simple", s.createPetSimple)
		r.Post("/api/pets/set_photo/{petID}", s.setPhoto)
		r.Put("/api/pets/{petID}", s.updatePet)
		r.Delete("/api/pets/{petID}", s.deletePet)
	})

	return r
}

type ownerKey struct{}

func contextWithOwner(r *http.Request, email string) context.Context {
	return context.WithValue(r.Context(), ownerKey{}, email)
}

func ownerFromRequest(r *http.Request) string {
	//nolint:forcetypeassert // always set by authenticate
	return r.Context().Value(ownerKey{}).(string)
}

// authenticate resolves the auth_key header to an account email.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := petfriends.APIKey(r.Header.Get("auth_key"))

		s.lock.RLock()
		email, ok := s.owners[key]
		s.lock.RUnlock()

		if !ok {
			writeHTML(w, http.StatusForbidden, forbiddenPage)
			return
		}

		next.ServeHTTP(w, r.WithContext(contextWithOwner(r, email)))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(v)
}

func writeHTML(w http.ResponseWriter, status int, page string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	_, _ = io.WriteString(w, page)
}

func writeBadRequest(w http.ResponseWriter, err error) {
	writeHTML(w, http.StatusBadRequest, fmt.Sprintf("<p>Bad Request: %s</p>\n", err))
}

func (s *Server) getAPIKey(w http.ResponseWriter, r *http.Request) {
	email := r.Header.Get("email")
	password := r.Header.Get("password")

	s.lock.RLock()
	a, ok := s.accounts[email]
	s.lock.RUnlock()

	if !ok || a.password != password {
		writeHTML(w, http.StatusForbidden, "<p>This user wasn't found in database</p>\n")
		return
	}

	writeJSON(w, http.StatusOK, petfriends.AuthResult{Key: a.key})
}

func (s *Server) listPets(w http.ResponseWriter, r *http.Request) {
	filter := petfriends.Filter(r.URL.Query().Get("filter"))
	if err := filter.Validate(); err != nil {
		writeBadRequest(w, err)
		return
	}

	owner := ownerFromRequest(r)

	s.lock.RLock()
	defer s.lock.RUnlock()

	list := petfriends.PetList{
		Pets: make([]petfriends.PetRecord, 0, len(s.pets)),
	}

	for _, p := range s.pets {
		if filter == petfriends.FilterMyPets && p.UserID != s.accounts[owner].userID() {
			continue
		}

		list.Pets = append(list.Pets, *p)
	}

	writeJSON(w, http.StatusOK, list)
}

// userID is the account's public identity, derived from its key so the
// key itself is never exposed in pet records.
func (a *account) userID() string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(a.key)).String()
}

// parseForm accepts both url encoded and multipart bodies.
func parseForm(r *http.Request) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		return r.ParseMultipartForm(maxUploadSize)
	}

	return r.ParseForm()
}

// petFields reads the three mutable text fields, all of which must be present.
func petFields(r *http.Request) (petfriends.NewPet, error) {
	var pet petfriends.NewPet

	fields := map[string]*string{
		"name":        &pet.Name,
		"animal_type": &pet.AnimalType,
		"age":         &pet.Age,
	}

	for name, value := range fields {
		values, ok := r.PostForm[name]
		if !ok || len(values) == 0 {
			return pet, fmt.Errorf("%w: %s", errMissingField, name)
		}

		*value = values[0]
	}

	return pet, nil
}

// readPhoto encodes the uploaded pet_photo part as a data URL.
func readPhoto(r *http.Request) (string, error) {
	file, header, err := r.FormFile("pet_photo")
	if err != nil {
		return "", fmt.Errorf("%w: pet_photo", errMissingField)
	}

	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

func (s *Server) insert(owner string, pet petfriends.NewPet, photo string) petfriends.PetRecord {
	s.lock.Lock()
	defer s.lock.Unlock()

	record := &petfriends.PetRecord{
		ID:         uuid.NewString(),
		Name:       pet.Name,
		AnimalType: pet.AnimalType,
		Age:        petfriends.Age(pet.Age),
		PetPhoto:   photo,
		UserID:     s.accounts[owner].userID(),
		CreatedAt:  fmt.Sprintf("%.6f", float64(s.now().UnixMicro())/1e6),
	}

	s.pets = slices.Insert(s.pets, 0, record)

	return *record
}

func (s *Server) createPet(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		writeBadRequest(w, err)
		return
	}

	pet, err := petFields(r)
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	photo, err := readPhoto(r)
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	writeJSON(w, http.StatusOK, s.insert(ownerFromRequest(r), pet, photo))
}

func (s *Server) createPetSimple(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		writeBadRequest(w, err)
		return
	}

	pet, err := petFields(r)
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	writeJSON(w, http.StatusOK, s.insert(ownerFromRequest(r), pet, ""))
}

// lookup finds a pet and reports whether the caller owns it. The write lock
// must be held.
func (s *Server) lookup(owner, petID string) (*petfriends.PetRecord, bool, bool) {
	i := slices.IndexFunc(s.pets, func(p *petfriends.PetRecord) bool {
		return p.ID == petID
	})
	if i < 0 {
		return nil, false, false
	}

	pet := s.pets[i]

	return pet, true, pet.UserID == s.accounts[owner].userID()
}

func (s *Server) setPhoto(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		writeBadRequest(w, err)
		return
	}

	photo, err := readPhoto(r)
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	pet, found, owned := s.lookup(ownerFromRequest(r), chi.URLParam(r, "petID"))

	switch {
	case !found:
		writeBadRequest(w, errors.New("pet not found"))
	case !owned:
		writeHTML(w, http.StatusInternalServerError, internalErrorPage)
	default:
		pet.PetPhoto = photo
		writeJSON(w, http.StatusOK, *pet)
	}
}

func (s *Server) updatePet(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		writeBadRequest(w, err)
		return
	}

	update, err := petFields(r)
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	// The service does not check ownership on update, any valid key may
	// change any pet.
	pet, found, _ := s.lookup(ownerFromRequest(r), chi.URLParam(r, "petID"))

	switch {
	case !found:
		writeBadRequest(w, errors.New("pet not found"))
	default:
		pet.Name = update.Name
		pet.AnimalType = update.AnimalType
		pet.Age = petfriends.Age(update.Age)
		writeJSON(w, http.StatusOK, *pet)
	}
}

func (s *Server) deletePet(w http.ResponseWriter, r *http.Request) {
	petID := chi.URLParam(r, "petID")

	s.lock.Lock()
	defer s.lock.Unlock()

	// As with update, deletion is not restricted to the owner.
	_, found, _ := s.lookup(ownerFromRequest(r), petID)

	switch {
	case !found:
		writeBadRequest(w, errors.New("pet not found"))
	default:
		s.pets = slices.DeleteFunc(s.pets, func(p *petfriends.PetRecord) bool {
			return p.ID == petID
		})

		w.WriteHeader(http.StatusOK)
	}
}
