// Package selection defines the feature selection a scaffold run is driven by.
package selection

import (
	"fmt"
	"strings"
)

// AuthProvider represents the authentication library wired into the generated app.
type AuthProvider int

const (
	// AuthNone means no authentication layer.
	AuthNone AuthProvider = iota
	// AuthNextAuth selects NextAuth.js.
	AuthNextAuth
	// AuthLucia selects Lucia.
	AuthLucia
)

// DataLayer represents the ORM wired into the generated app.
type DataLayer int

const (
	// DataNone means no database layer.
	DataNone DataLayer = iota
	// DataPrisma selects Prisma.
	DataPrisma
	// DataDrizzle selects Drizzle.
	DataDrizzle
)

var authNames = [...]string{
	AuthNone:     "none",
	AuthNextAuth: "next-auth",
	AuthLucia:    "lucia",
}

var dataNames = [...]string{
	DataNone:    "none",
	DataPrisma:  "prisma",
	DataDrizzle: "drizzle",
}

// AllAuthProviders returns every auth provider in declaration order.
func AllAuthProviders() []AuthProvider {
	return []AuthProvider{AuthNone, AuthNextAuth, AuthLucia}
}

// AllDataLayers returns every data layer in declaration order.
func AllDataLayers() []DataLayer {
	return []DataLayer{DataNone, DataPrisma, DataDrizzle}
}

// String returns the CLI name of the provider.
func (a AuthProvider) String() string {
	if a < 0 || int(a) >= len(authNames) {
		return fmt.Sprintf("AuthProvider(%d)", int(a))
	}
	return authNames[a]
}

// String returns the CLI name of the data layer.
func (d DataLayer) String() string {
	if d < 0 || int(d) >= len(dataNames) {
		return fmt.Sprintf("DataLayer(%d)", int(d))
	}
	return dataNames[d]
}

// ParseAuthProvider parses a CLI name into an AuthProvider.
// The empty string is treated as "none".
func ParseAuthProvider(s string) (AuthProvider, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return AuthNone, nil
	}
	for i, n := range authNames {
		if n == name {
			return AuthProvider(i), nil
		}
	}
	return AuthNone, fmt.Errorf("unknown auth provider %q (valid: %s)", s, strings.Join(authNames[:], ", "))
}

// ParseDataLayer parses a CLI name into a DataLayer.
// The empty string is treated as "none".
func ParseDataLayer(s string) (DataLayer, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return DataNone, nil
	}
	for i, n := range dataNames {
		if n == name {
			return DataLayer(i), nil
		}
	}
	return DataNone, fmt.Errorf("unknown data layer %q (valid: %s)", s, strings.Join(dataNames[:], ", "))
}

// MarshalText implements encoding.TextMarshaler.
func (a AuthProvider) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *AuthProvider) UnmarshalText(text []byte) error {
	v, err := ParseAuthProvider(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d DataLayer) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *DataLayer) UnmarshalText(text []byte) error {
	v, err := ParseDataLayer(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Selection is the user's combination of routing style, auth provider and data layer.
// It is a plain value; every combination is valid.
type Selection struct {
	// UseAppRouter selects the Next.js app router instead of the pages router.
	UseAppRouter bool `json:"app_router" yaml:"app_router"`
	// Auth is the authentication provider.
	Auth AuthProvider `json:"auth" yaml:"auth"`
	// Data is the ORM.
	Data DataLayer `json:"db" yaml:"db"`
}

// HasAuth reports whether any auth provider is selected.
func (s Selection) HasAuth() bool {
	return s.Auth != AuthNone
}

// HasDB reports whether any data layer is selected.
func (s Selection) HasDB() bool {
	return s.Data != DataNone
}

// RouterStyle returns "app" or "pages".
func (s Selection) RouterStyle() string {
	if s.UseAppRouter {
		return "app"
	}
	return "pages"
}

// String returns a compact description, e.g. "app/next-auth/prisma".
func (s Selection) String() string {
	return fmt.Sprintf("%s/%s/%s", s.RouterStyle(), s.Auth, s.Data)
}

// All enumerates every possible selection.
func All() []Selection {
	var out []Selection
	for _, appRouter := range []bool{false, true} {
		for _, a := range AllAuthProviders() {
			for _, d := range AllDataLayers() {
				out = append(out, Selection{UseAppRouter: appRouter, Auth: a, Data: d})
			}
		}
	}
	return out
}
