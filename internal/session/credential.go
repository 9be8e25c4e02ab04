// Package session owns the persisted authentication state for the current
// user: the access/refresh token pair plus whatever profile fields the
// login endpoint returned alongside it.
package session

import "encoding/json"

// Storage keys. The namespaced key is authoritative; the bare legacy key is
// a duplicate kept for readers of the pre-namespacing schema, which also
// used "access"/"refresh" field names.
const (
	PrimaryKey = "halobharat:authData"
	LegacyKey  = "authData"
)

// Credential is the current user's token pair. Extra carries any additional
// fields from the login response through storage unchanged.
type Credential struct {
	AccessToken  string
	RefreshToken string
	Extra        map[string]json.RawMessage
}

// ParseCredential decodes a stored or server-sent credential record,
// normalizing legacy "access"/"refresh" field names onto the canonical
// "access_token"/"refresh_token" pair.
func ParseCredential(data []byte) (*Credential, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	str := func(key string) string {
		v, ok := raw[key]
		if !ok {
			return ""
		}
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return ""
		}
		return s
	}

	cred := &Credential{Extra: make(map[string]json.RawMessage)}
	cred.AccessToken = str("access_token")
	if cred.AccessToken == "" {
		cred.AccessToken = str("access")
	}
	cred.RefreshToken = str("refresh_token")
	if cred.RefreshToken == "" {
		cred.RefreshToken = str("refresh")
	}
	for k, v := range raw {
		switch k {
		case "access_token", "refresh_token", "access", "refresh":
			continue
		}
		cred.Extra[k] = v
	}
	return cred, nil
}

// encode serializes the credential. With legacy set, the record also carries
// "access"/"refresh" aliases for readers that have not migrated.
func (c *Credential) encode(legacy bool) ([]byte, error) {
	out := make(map[string]any, len(c.Extra)+4)
	for k, v := range c.Extra {
		out[k] = v
	}
	out["access_token"] = c.AccessToken
	out["refresh_token"] = c.RefreshToken
	if legacy {
		out["access"] = c.AccessToken
		out["refresh"] = c.RefreshToken
	}
	return json.Marshal(out)
}

// clone returns a copy safe to mutate without affecting the store's cache.
func (c *Credential) clone() *Credential {
	out := &Credential{
		AccessToken:  c.AccessToken,
		RefreshToken: c.RefreshToken,
		Extra:        make(map[string]json.RawMessage, len(c.Extra)),
	}
	for k, v := range c.Extra {
		out.Extra[k] = v
	}
	return out
}
