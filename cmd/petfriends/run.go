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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/nscaledev/petfriends/pkg/petfriends"
)

const usage = "<key|list|add|create|photo|update|delete> [args]"

var (
	// ErrUsage is raised when the command line cannot be understood.
	ErrUsage = errors.New("usage error")

	// ErrAuthentication is raised when the configured account is refused.
	ErrAuthentication = errors.New("authentication failed")
)

// printResponse writes the status line followed by the raw body.
func printResponse[T any](out io.Writer, resp *petfriends.Response[T]) error {
	if _, err := fmt.Fprintf(out, "status: %d\n", resp.StatusCode); err != nil {
		return err
	}

	if len(resp.Raw) == 0 {
		return nil
	}

	_, err := fmt.Fprintln(out, resp.Text())

	return err
}

// authenticate obtains a key for commands that need one.
func authenticate(ctx context.Context, client petfriends.ClientInterface, credentials petfriends.Credentials) (petfriends.APIKey, error) {
	resp, err := client.GetAPIKey(ctx, credentials)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK || !resp.Parsed() || resp.Body.Key == "" {
		return "", fmt.Errorf("%w: status %d", ErrAuthentication, resp.StatusCode)
	}

	return resp.Body.Key, nil
}

// expectArgs checks the argument count of a command.
func expectArgs(command string, args []string, names ...string) error {
	if len(args) != len(names) {
		return fmt.Errorf("%w: %s expects %d arguments %v, got %d", ErrUsage, command, len(names), names, len(args))
	}

	return nil
}

// newPet builds a pet from name, animal type and age arguments.
func newPet(args []string) petfriends.NewPet {
	return petfriends.NewPet{
		Name:       args[0],
		AnimalType: args[1],
		Age:        args[2],
	}
}

// run executes a single command and prints its outcome. Non-2xx statuses are
// printed rather than treated as failures.
//
//nolint:cyclop
func run(ctx context.Context, client petfriends.ClientInterface, credentials petfriends.Credentials, args []string, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: %s", ErrUsage, usage)
	}

	command, args := args[0], args[1:]

	if command == "key" {
		if err := expectArgs(command, args); err != nil {
			return err
		}

		resp, err := client.GetAPIKey(ctx, credentials)
		if err != nil {
			return err
		}

		return printResponse(out, resp)
	}

	key, err := authenticate(ctx, client, credentials)
	if err != nil {
		return err
	}

	switch command {
	case "list":
		filter := petfriends.FilterAll

		if len(args) > 1 {
			return fmt.Errorf("%w: list expects at most one argument [filter]", ErrUsage)
		}

		if len(args) == 1 {
			filter = petfriends.Filter(args[0])
		}

		resp, err := client.GetListOfPets(ctx, key, filter)
		if err != nil {
			return err
		}

		return printResponse(out, resp)
	case "add":
		if err := expectArgs(command, args, "name", "animal_type", "age", "photo"); err != nil {
			return err
		}

		resp, err := client.AddNewPet(ctx, key, newPet(args), args[3])
		if err != nil {
			return err
		}

		return printResponse(out, resp)
	case "create":
		if err := expectArgs(command, args, "name", "animal_type", "age"); err != nil {
			return err
		}

		resp, err := client.CreatePetSimple(ctx, key, newPet(args))
		if err != nil {
			return err
		}

		return printResponse(out, resp)
	case "photo":
		if err := expectArgs(command, args, "pet_id", "photo"); err != nil {
			return err
		}

		resp, err := client.SetPhoto(ctx, key, args[0], args[1])
		if err != nil {
			return err
		}

		return printResponse(out, resp)
	case "update":
		if err := expectArgs(command, args, "pet_id", "name", "animal_type", "age"); err != nil {
			return err
		}

		resp, err := client.UpdatePetInfo(ctx, key, args[0], newPet(args[1:]))
		if err != nil {
			return err
		}

		return printResponse(out, resp)
	case "delete":
		if err := expectArgs(command, args, "pet_id"); err != nil {
			return err
		}

		resp, err := client.DeletePet(ctx, key, args[0])
		if err != nil {
			return err
		}

		return printResponse(out, resp)
	}

	return fmt.Errorf("%w: unknown command %q", ErrUsage, command)
}
