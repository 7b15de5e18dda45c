package selector

import (
	"github.com/tacogips/t3init/internal/selection"
	"github.com/tacogips/t3init/internal/template/catalog"
)

// Destination paths, relative to the project root.
const (
	DestPagesHandler = "src/pages/api/trpc/[trpc].ts"
	DestAppHandler   = "src/app/api/trpc/[trpc]/route.ts"
	DestGlue         = "src/server/api/trpc.ts"
	DestRootRouter   = "src/server/api/root.ts"
	DestPostRouter   = "src/server/api/routers/post.ts"
	DestTRPCServer   = "src/trpc/server.ts"
	DestTRPCClient   = "src/trpc/client.ts"
	DestTRPCShared   = "src/trpc/shared.ts"
	DestAction       = "src/app/_actions.ts"
	DestClientUtils  = "src/utils/api.ts"
)

// BaseDependencies are the runtime packages the API layer always needs.
var BaseDependencies = []string{
	"@tanstack/react-query",
	"superjson",
	"@trpc/server",
	"@trpc/client",
	"@trpc/next",
	"@trpc/react-query",
}

var (
	pagesHandlerTable = fixed(catalog.SlotHandler, catalog.HandlerPages)
	appHandlerTable   = fixed(catalog.SlotHandler, catalog.HandlerApp)

	pagesGlueTable = combined(catalog.SlotGlue,
		catalog.GluePagesWithAuthDB,
		catalog.GluePagesWithAuth,
		catalog.GluePagesWithDB,
		catalog.GluePagesBase,
	)
	appGlueTable = combined(catalog.SlotGlue,
		catalog.GlueAppWithAuthDB,
		catalog.GlueAppWithAuth,
		catalog.GlueAppWithDB,
		catalog.GlueAppBase,
	)

	rootRouterTable = fixed(catalog.SlotRootRouter, catalog.RootRouter)

	postRouterTable = perORM(catalog.SlotExampleRouter,
		catalog.PostRouterWithAuthPrisma,
		catalog.PostRouterWithAuthDrizzle,
		catalog.PostRouterWithAuth,
		catalog.PostRouterWithPrisma,
		catalog.PostRouterWithDrizzle,
		catalog.PostRouterBase,
	)

	actionTable = perORM(catalog.SlotAction,
		catalog.ActionWithAuthPrisma,
		catalog.ActionWithAuthDrizzle,
		catalog.ActionWithAuth,
		catalog.ActionWithPrisma,
		catalog.ActionWithDrizzle,
		catalog.ActionBase,
	)
)

// Select computes the API layer copy list and dependency declaration for sel.
// It is pure: the same selection always yields the same result.
func Select(sel selection.Selection) ([]CopyInstruction, DependencyDeclaration) {
	deps := DependencyDeclaration{
		Packages: append([]string(nil), BaseDependencies...),
		Dev:      false,
	}

	handlerTable, handlerDest, glueTable := pagesHandlerTable, DestPagesHandler, pagesGlueTable
	if sel.UseAppRouter {
		handlerTable, handlerDest, glueTable = appHandlerTable, DestAppHandler, appGlueTable
	}

	copies := []CopyInstruction{
		instruction(handlerTable, sel, handlerDest),
		instruction(glueTable, sel, DestGlue),
		instruction(rootRouterTable, sel, DestRootRouter),
		instruction(postRouterTable, sel, DestPostRouter),
	}

	if sel.UseAppRouter {
		copies = append(copies,
			CopyInstruction{Slot: catalog.SlotServerAdapter, Template: catalog.TRPCServer, Destination: DestTRPCServer},
			CopyInstruction{Slot: catalog.SlotClientAdapter, Template: catalog.TRPCClient, Destination: DestTRPCClient},
			CopyInstruction{Slot: catalog.SlotSharedConfig, Template: catalog.TRPCShared, Destination: DestTRPCShared},
			instruction(actionTable, sel, DestAction),
		)
	} else {
		copies = append(copies,
			CopyInstruction{Slot: catalog.SlotClientUtils, Template: catalog.ClientUtils, Destination: DestClientUtils},
		)
	}

	return copies, deps
}

func instruction(t DecisionTable, sel selection.Selection, dest string) CopyInstruction {
	return CopyInstruction{Slot: t.Slot, Template: t.Resolve(sel), Destination: dest}
}

// trpcInstaller wraps Select as an Installer. It applies to every selection.
type trpcInstaller struct{}

func (trpcInstaller) Name() string { return "trpc" }

func (trpcInstaller) Applies(selection.Selection) bool { return true }

func (trpcInstaller) Plan(sel selection.Selection) Plan {
	copies, deps := Select(sel)
	return Plan{Copies: copies, Dependencies: []DependencyDeclaration{deps}}
}
