// Package petsvc is a small handler package used to exercise doc comment
// loading.
package petsvc

import "net/http"

// ListPets returns every pet in the store.
//
// Results page through the limit query parameter.
//
//	---
//	get:
//	  operationId: listPets
//	  summary: List pets
//	  parameters:
//	    - name: limit
//	      in: query
//	      schema:
//	        type: integer
//	  responses:
//	    "200":
//	      description: a page of pets
func ListPets(w http.ResponseWriter, r *http.Request) {}

// CreatePet stores a new pet.
//
//	---
//	post:
//	  operationId: createPet
//	  responses:
//	    "201":
//	      description: created
func CreatePet(w http.ResponseWriter, r *http.Request) {}

// Health reports liveness. The audit key below is not an HTTP method and
// must not survive parsing.
//
//	---
//	get:
//	  operationId: health
//	  responses:
//	    "200":
//	      description: alive
//	x-internal: true
//	audit: ignored
func Health(w http.ResponseWriter, r *http.Request) {}

// Store carries the handlers that need shared state.
type Store struct{}

// GetPet fetches one pet by its identifier.
//
//	---
//	get:
//	  operationId: getPet
//	  responses:
//	    "200":
//	      description: a pet
//	    "404":
//	      description: no such pet
func (s *Store) GetPet(w http.ResponseWriter, r *http.Request) {}

// DeletePet removes a pet. Plain documentation, no operations block.
func (s *Store) DeletePet(w http.ResponseWriter, r *http.Request) {}

func undocumented() {}
