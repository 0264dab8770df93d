package oas

import (
	json "github.com/goccy/go-json"
)

// MarshalJSON implements custom JSON marshaling for Info.
// This is required to flatten Extra fields (specification extensions like x-*)
// into the top-level JSON object, as JSON struct tags don't support
// inline maps like yaml:",inline".
func (i *Info) MarshalJSON() ([]byte, error) {
	// Fast path: no Extra fields, use standard marshaling
	if len(i.Extra) == 0 {
		type Alias Info
		return json.Marshal((*Alias)(i))
	}

	// Build map directly to avoid double-marshal pattern
	m := make(map[string]any, 7+len(i.Extra))

	// Add known fields (omit zero values to match json:",omitempty" behavior)
	m["title"] = i.Title
	m["version"] = i.Version

	if i.Description != "" {
		m["description"] = i.Description
	}
	if i.TermsOfService != "" {
		m["termsOfService"] = i.TermsOfService
	}
	if i.Contact != nil {
		m["contact"] = i.Contact
	}
	if i.License != nil {
		m["license"] = i.License
	}
	if i.Summary != "" {
		m["summary"] = i.Summary
	}

	// Add Extra fields (spec extensions must start with "x-")
	for k, v := range i.Extra {
		m[k] = v
	}

	return json.Marshal(m)
}

// MarshalJSON implements custom JSON marshaling for Contact.
// This is required to flatten Extra fields (specification extensions like x-*)
// into the top-level JSON object, as JSON struct tags don't support
// inline maps like yaml:",inline".
func (c *Contact) MarshalJSON() ([]byte, error) {
	// Fast path: no Extra fields, use standard marshaling
	if len(c.Extra) == 0 {
		type Alias Contact
		return json.Marshal((*Alias)(c))
	}

	// Build map directly to avoid double-marshal pattern
	m := make(map[string]any, 3+len(c.Extra))

	// Add known fields (omit zero values to match json:",omitempty" behavior)
	if c.Name != "" {
		m["name"] = c.Name
	}
	if c.URL != "" {
		m["url"] = c.URL
	}
	if c.Email != "" {
		m["email"] = c.Email
	}

	// Add Extra fields (spec extensions must start with "x-")
	for k, v := range c.Extra {
		m[k] = v
	}

	return json.Marshal(m)
}

// MarshalJSON implements custom JSON marshaling for License.
// This is required to flatten Extra fields (specification extensions like x-*)
// into the top-level JSON object, as JSON struct tags don't support
// inline maps like yaml:",inline".
func (l *License) MarshalJSON() ([]byte, error) {
	// Fast path: no Extra fields, use standard marshaling
	if len(l.Extra) == 0 {
		type Alias License
		return json.Marshal((*Alias)(l))
	}

	// Build map directly to avoid double-marshal pattern
	m := make(map[string]any, 3+len(l.Extra))

	// Add known fields (omit zero values to match json:",omitempty" behavior)
	if l.Name != "" {
		m["name"] = l.Name
	}
	if l.URL != "" {
		m["url"] = l.URL
	}
	if l.Identifier != "" {
		m["identifier"] = l.Identifier
	}

	// Add Extra fields (spec extensions must start with "x-")
	for k, v := range l.Extra {
		m[k] = v
	}

	return json.Marshal(m)
}

// MarshalJSON implements custom JSON marshaling for ExternalDocs.
// This is required to flatten Extra fields (specification extensions like x-*)
// into the top-level JSON object, as JSON struct tags don't support
// inline maps like yaml:",inline".
func (e *ExternalDocs) MarshalJSON() ([]byte, error) {
	// Fast path: no Extra fields, use standard marshaling
	if len(e.Extra) == 0 {
		type Alias ExternalDocs
		return json.Marshal((*Alias)(e))
	}

	// Build map directly to avoid double-marshal pattern
	m := make(map[string]any, 2+len(e.Extra))

	// Add known fields (omit zero values to match json:",omitempty" behavior)
	if e.Description != "" {
		m["description"] = e.Description
	}
	m["url"] = e.URL

	// Add Extra fields (spec extensions must start with "x-")
	for k, v := range e.Extra {
		m[k] = v
	}

	return json.Marshal(m)
}

// MarshalJSON implements custom JSON marshaling for Tag.
// This is required to flatten Extra fields (specification extensions like x-*)
// into the top-level JSON object, as JSON struct tags don't support
// inline maps like yaml:",inline".
func (t *Tag) MarshalJSON() ([]byte, error) {
	// Fast path: no Extra fields, use standard marshaling
	if len(t.Extra) == 0 {
		type Alias Tag
		return json.Marshal((*Alias)(t))
	}

	// Build map directly to avoid double-marshal pattern
	m := make(map[string]any, 3+len(t.Extra))

	// Add known fields (omit zero values to match json:",omitempty" behavior)
	m["name"] = t.Name

	if t.Description != "" {
		m["description"] = t.Description
	}
	if t.ExternalDocs != nil {
		m["externalDocs"] = t.ExternalDocs
	}

	// Add Extra fields (spec extensions must start with "x-")
	for k, v := range t.Extra {
		m[k] = v
	}

	return json.Marshal(m)
}

// MarshalJSON implements custom JSON marshaling for Server.
// This is required to flatten Extra fields (specification extensions like x-*)
// into the top-level JSON object, as JSON struct tags don't support
// inline maps like yaml:",inline".
func (s *Server) MarshalJSON() ([]byte, error) {
	// Fast path: no Extra fields, use standard marshaling
	if len(s.Extra) == 0 {
		type Alias Server
		return json.Marshal((*Alias)(s))
	}

	// Build map directly to avoid double-marshal pattern
	m := make(map[string]any, 3+len(s.Extra))

	// Add known fields (omit zero values to match json:",omitempty" behavior)
	m["url"] = s.URL

	if s.Description != "" {
		m["description"] = s.Description
	}
	if len(s.Variables) > 0 {
		m["variables"] = s.Variables
	}

	// Add Extra fields (spec extensions must start with "x-")
	for k, v := range s.Extra {
		m[k] = v
	}

	return json.Marshal(m)
}

// MarshalJSON implements custom JSON marshaling for ServerVariable.
// This is required to flatten Extra fields (specification extensions like x-*)
// into the top-level JSON object, as JSON struct tags don't support
// inline maps like yaml:",inline".
func (sv *ServerVariable) MarshalJSON() ([]byte, error) {
	// Fast path: no Extra fields, use standard marshaling
	if len(sv.Extra) == 0 {
		type Alias ServerVariable
		return json.Marshal((*Alias)(sv))
	}

	// Build map directly to avoid double-marshal pattern
	m := make(map[string]any, 3+len(sv.Extra))

	// Add known fields (omit zero values to match json:",omitempty" behavior)
	if len(sv.Enum) > 0 {
		m["enum"] = sv.Enum
	}
	m["default"] = sv.Default

	if sv.Description != "" {
		m["description"] = sv.Description
	}

	// Add Extra fields (spec extensions must start with "x-")
	for k, v := range sv.Extra {
		m[k] = v
	}

	return json.Marshal(m)
}
