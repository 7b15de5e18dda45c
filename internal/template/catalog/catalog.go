// Package catalog enumerates every static template variant shipped in the
// extras tree and the logical file slot each one fills.
package catalog

import "fmt"

// Slot is the logical role a copied file plays in the generated project.
type Slot int

const (
	// SlotHandler is the HTTP entrypoint for the API layer.
	SlotHandler Slot = iota
	// SlotGlue is the API layer integration module (src/server/api/trpc.ts).
	SlotGlue
	// SlotRootRouter aggregates every router.
	SlotRootRouter
	// SlotExampleRouter is the demo router module.
	SlotExampleRouter
	// SlotServerAdapter is the app router server-side caller.
	SlotServerAdapter
	// SlotClientAdapter is the app router client provider.
	SlotClientAdapter
	// SlotSharedConfig holds config shared by both adapters.
	SlotSharedConfig
	// SlotAction is the app router server action module.
	SlotAction
	// SlotClientUtils is the pages router client binding.
	SlotClientUtils
	// SlotAuthServer is the server-side auth setup.
	SlotAuthServer
	// SlotHomePage is the landing page.
	SlotHomePage

	numSlots
)

var slotNames = [numSlots]string{
	SlotHandler:       "handler",
	SlotGlue:          "glue",
	SlotRootRouter:    "root-router",
	SlotExampleRouter: "example-router",
	SlotServerAdapter: "server-adapter",
	SlotClientAdapter: "client-adapter",
	SlotSharedConfig:  "shared-config",
	SlotAction:        "action",
	SlotClientUtils:   "client-utils",
	SlotAuthServer:    "auth-server",
	SlotHomePage:      "home-page",
}

func (s Slot) String() string {
	if s < 0 || s >= numSlots {
		return fmt.Sprintf("Slot(%d)", int(s))
	}
	return slotNames[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s Slot) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// TemplateID identifies one pre-authored template file under the extras root.
type TemplateID int

const (
	// Request handlers.
	HandlerPages TemplateID = iota
	HandlerApp

	// API glue, pages router.
	GluePagesBase
	GluePagesWithAuth
	GluePagesWithDB
	GluePagesWithAuthDB

	// API glue, app router.
	GlueAppBase
	GlueAppWithAuth
	GlueAppWithDB
	GlueAppWithAuthDB

	RootRouter

	// Example "post" router.
	PostRouterBase
	PostRouterWithAuth
	PostRouterWithPrisma
	PostRouterWithDrizzle
	PostRouterWithAuthPrisma
	PostRouterWithAuthDrizzle

	// App router adapters.
	TRPCServer
	TRPCClient
	TRPCShared

	// Server actions.
	ActionBase
	ActionWithAuth
	ActionWithPrisma
	ActionWithDrizzle
	ActionWithAuthPrisma
	ActionWithAuthDrizzle

	ClientUtils

	// Auth server setup.
	NextAuthPagesBase
	NextAuthPagesWithPrisma
	NextAuthPagesWithDrizzle
	NextAuthAppBase
	NextAuthAppWithPrisma
	NextAuthAppWithDrizzle
	LuciaPagesBase
	LuciaPagesWithPrisma
	LuciaPagesWithDrizzle
	LuciaAppBase
	LuciaAppWithPrisma
	LuciaAppWithDrizzle

	// Home pages.
	PagesIndexBase
	PagesIndexWithAuth
	PagesIndexWithLucia
	AppPageBase
	AppPageWithAuth
	AppPageWithLucia

	numTemplates
)

// sources maps every TemplateID to its path relative to the extras root.
// Paths always use forward slashes.
var sources = [numTemplates]string{
	HandlerPages: "src/pages/api/trpc/[trpc].ts",
	HandlerApp:   "src/app/api/trpc/[trpc]/route.ts",

	GluePagesBase:       "src/server/api/trpc-pages/base.ts",
	GluePagesWithAuth:   "src/server/api/trpc-pages/with-auth.ts",
	GluePagesWithDB:     "src/server/api/trpc-pages/with-db.ts",
	GluePagesWithAuthDB: "src/server/api/trpc-pages/with-auth-db.ts",

	GlueAppBase:       "src/server/api/trpc-app/base.ts",
	GlueAppWithAuth:   "src/server/api/trpc-app/with-auth.ts",
	GlueAppWithDB:     "src/server/api/trpc-app/with-db.ts",
	GlueAppWithAuthDB: "src/server/api/trpc-app/with-auth-db.ts",

	RootRouter: "src/server/api/root.ts",

	PostRouterBase:            "src/server/api/routers/post/base.ts",
	PostRouterWithAuth:        "src/server/api/routers/post/with-auth.ts",
	PostRouterWithPrisma:      "src/server/api/routers/post/with-prisma.ts",
	PostRouterWithDrizzle:     "src/server/api/routers/post/with-drizzle.ts",
	PostRouterWithAuthPrisma:  "src/server/api/routers/post/with-auth-prisma.ts",
	PostRouterWithAuthDrizzle: "src/server/api/routers/post/with-auth-drizzle.ts",

	TRPCServer: "src/trpc/server.ts",
	TRPCClient: "src/trpc/client.ts",
	TRPCShared: "src/trpc/shared.ts",

	ActionBase:            "src/app/actions/with-trpc.ts",
	ActionWithAuth:        "src/app/actions/with-auth-trpc.ts",
	ActionWithPrisma:      "src/app/actions/with-prisma-trpc.ts",
	ActionWithDrizzle:     "src/app/actions/with-drizzle-trpc.ts",
	ActionWithAuthPrisma:  "src/app/actions/with-auth-prisma-trpc.ts",
	ActionWithAuthDrizzle: "src/app/actions/with-auth-drizzle-trpc.ts",

	ClientUtils: "src/utils/api.ts",

	NextAuthPagesBase:        "src/server/next-auth-pages/base.ts",
	NextAuthPagesWithPrisma:  "src/server/next-auth-pages/with-prisma.ts",
	NextAuthPagesWithDrizzle: "src/server/next-auth-pages/with-drizzle.ts",
	NextAuthAppBase:          "src/server/next-auth-app/base.ts",
	NextAuthAppWithPrisma:    "src/server/next-auth-app/with-prisma.ts",
	NextAuthAppWithDrizzle:   "src/server/next-auth-app/with-drizzle.ts",
	LuciaPagesBase:           "src/server/lucia-pages/base.ts",
	LuciaPagesWithPrisma:     "src/server/lucia-pages/with-prisma.ts",
	LuciaPagesWithDrizzle:    "src/server/lucia-pages/with-drizzle.ts",
	LuciaAppBase:             "src/server/lucia-app/base.ts",
	LuciaAppWithPrisma:       "src/server/lucia-app/with-prisma.ts",
	LuciaAppWithDrizzle:      "src/server/lucia-app/with-drizzle.ts",

	PagesIndexBase:      "src/pages/index/with-trpc.tsx",
	PagesIndexWithAuth:  "src/pages/index/with-auth-trpc.tsx",
	PagesIndexWithLucia: "src/pages/index/with-lucia-trpc.tsx",
	AppPageBase:         "src/app/page/with-trpc.tsx",
	AppPageWithAuth:     "src/app/page/with-auth-trpc.tsx",
	AppPageWithLucia:    "src/app/page/with-lucia-trpc.tsx",
}

// All returns every TemplateID in declaration order.
func All() []TemplateID {
	ids := make([]TemplateID, 0, numTemplates)
	for id := TemplateID(0); id < numTemplates; id++ {
		ids = append(ids, id)
	}
	return ids
}

// Valid reports whether id is a declared template.
func (id TemplateID) Valid() bool {
	return id >= 0 && id < numTemplates
}

// Source returns the template path relative to the extras root.
func (id TemplateID) Source() string {
	if !id.Valid() {
		return ""
	}
	return sources[id]
}

// String returns the source path, which is unique per template.
func (id TemplateID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("TemplateID(%d)", int(id))
	}
	return sources[id]
}

// MarshalText implements encoding.TextMarshaler.
func (id TemplateID) MarshalText() ([]byte, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("invalid template id %d", int(id))
	}
	return []byte(sources[id]), nil
}
