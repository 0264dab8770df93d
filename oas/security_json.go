package oas

import (
	json "github.com/goccy/go-json"
)

// MarshalJSON implements custom JSON marshaling for SecurityScheme.
// This is required to flatten Extra fields (specification extensions like x-*)
// into the top-level JSON object, as JSON struct tags don't support
// inline maps like yaml:",inline".
func (s *SecurityScheme) MarshalJSON() ([]byte, error) {
	// Fast path: no Extra fields, use standard marshaling
	if len(s.Extra) == 0 {
		type Alias SecurityScheme
		return json.Marshal((*Alias)(s))
	}

	// Build map directly to avoid double-marshal pattern
	m := make(map[string]any, 10+len(s.Extra))

	// Add known fields (omit zero values to match json:",omitempty" behavior)
	if s.Ref != "" {
		m["$ref"] = s.Ref
	}
	if s.Type != "" {
		m["type"] = s.Type
	}
	if s.Description != "" {
		m["description"] = s.Description
	}
	if s.Name != "" {
		m["name"] = s.Name
	}
	if s.In != "" {
		m["in"] = s.In
	}
	if s.Scheme != "" {
		m["scheme"] = s.Scheme
	}
	if s.BearerFormat != "" {
		m["bearerFormat"] = s.BearerFormat
	}
	if s.Flows != nil {
		m["flows"] = s.Flows
	}
	if s.Flow != "" {
		m["flow"] = s.Flow
	}
	if s.AuthorizationURL != "" {
		m["authorizationUrl"] = s.AuthorizationURL
	}
	if s.TokenURL != "" {
		m["tokenUrl"] = s.TokenURL
	}
	if len(s.Scopes) > 0 {
		m["scopes"] = s.Scopes
	}
	if s.OpenIDConnectURL != "" {
		m["openIdConnectUrl"] = s.OpenIDConnectURL
	}

	// Add Extra fields (spec extensions must start with "x-")
	for k, v := range s.Extra {
		m[k] = v
	}

	return json.Marshal(m)
}

// MarshalJSON implements custom JSON marshaling for OAuthFlows.
// This is required to flatten Extra fields (specification extensions like x-*)
// into the top-level JSON object, as JSON struct tags don't support
// inline maps like yaml:",inline".
func (f *OAuthFlows) MarshalJSON() ([]byte, error) {
	// Fast path: no Extra fields, use standard marshaling
	if len(f.Extra) == 0 {
		type Alias OAuthFlows
		return json.Marshal((*Alias)(f))
	}

	// Build map directly to avoid double-marshal pattern
	m := make(map[string]any, 4+len(f.Extra))

	// Add known fields (omit zero values to match json:",omitempty" behavior)
	if f.Implicit != nil {
		m["implicit"] = f.Implicit
	}
	if f.Password != nil {
		m["password"] = f.Password
	}
	if f.ClientCredentials != nil {
		m["clientCredentials"] = f.ClientCredentials
	}
	if f.AuthorizationCode != nil {
		m["authorizationCode"] = f.AuthorizationCode
	}

	// Add Extra fields (spec extensions must start with "x-")
	for k, v := range f.Extra {
		m[k] = v
	}

	return json.Marshal(m)
}

// MarshalJSON implements custom JSON marshaling for OAuthFlow.
// This is required to flatten Extra fields (specification extensions like x-*)
// into the top-level JSON object, as JSON struct tags don't support
// inline maps like yaml:",inline".
func (f *OAuthFlow) MarshalJSON() ([]byte, error) {
	// Fast path: no Extra fields, use standard marshaling
	if len(f.Extra) == 0 {
		type Alias OAuthFlow
		return json.Marshal((*Alias)(f))
	}

	// Build map directly to avoid double-marshal pattern
	m := make(map[string]any, 4+len(f.Extra))

	// Add known fields (omit zero values to match json:",omitempty" behavior)
	if f.AuthorizationURL != "" {
		m["authorizationUrl"] = f.AuthorizationURL
	}
	if f.TokenURL != "" {
		m["tokenUrl"] = f.TokenURL
	}
	if f.RefreshURL != "" {
		m["refreshUrl"] = f.RefreshURL
	}
	m["scopes"] = f.Scopes

	// Add Extra fields (spec extensions must start with "x-")
	for k, v := range f.Extra {
		m[k] = v
	}

	return json.Marshal(m)
}
