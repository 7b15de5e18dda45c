package selector

import (
	"github.com/tacogips/t3init/internal/selection"
	"github.com/tacogips/t3init/internal/template/catalog"
)

// Installer contributes the files and packages for one feature area.
type Installer interface {
	// Name identifies the installer in logs and plan output.
	Name() string
	// Applies reports whether the installer takes part for sel.
	Applies(sel selection.Selection) bool
	// Plan returns the installer's contribution. Only called when Applies is true.
	Plan(sel selection.Selection) Plan
}

// installers run in this order; the API layer always comes first.
var installers = []Installer{
	trpcInstaller{},
	authInstaller{},
	pageInstaller{},
}

// Installers returns the registered installers in execution order.
func Installers() []Installer {
	return append([]Installer(nil), installers...)
}

// Applicable returns the installers that take part for sel, in order.
func Applicable(sel selection.Selection) []Installer {
	var out []Installer
	for _, in := range installers {
		if in.Applies(sel) {
			out = append(out, in)
		}
	}
	return out
}

// Compose runs every applicable installer and concatenates their plans.
func Compose(sel selection.Selection) Plan {
	var plan Plan
	for _, in := range Applicable(sel) {
		plan.Append(in.Plan(sel))
	}
	return plan
}

const (
	DestAuthServer = "src/server/auth.ts"
	DestAppPage    = "src/app/page.tsx"
	DestPagesIndex = "src/pages/index.tsx"
)

func authServerTable(nextBase, nextPrisma, nextDrizzle, luciaBase, luciaPrisma, luciaDrizzle catalog.TemplateID) DecisionTable {
	return DecisionTable{Slot: catalog.SlotAuthServer, Rules: []Rule{
		{Auth: AuthIsNextAuth, Data: DataIsPrisma, Template: nextPrisma},
		{Auth: AuthIsNextAuth, Data: DataIsDrizzle, Template: nextDrizzle},
		{Auth: AuthIsNextAuth, Data: DataAbsent, Template: nextBase},
		{Auth: AuthIsLucia, Data: DataIsPrisma, Template: luciaPrisma},
		{Auth: AuthIsLucia, Data: DataIsDrizzle, Template: luciaDrizzle},
		{Auth: AuthIsLucia, Data: DataAbsent, Template: luciaBase},
	}}
}

var (
	pagesAuthServerTable = authServerTable(
		catalog.NextAuthPagesBase, catalog.NextAuthPagesWithPrisma, catalog.NextAuthPagesWithDrizzle,
		catalog.LuciaPagesBase, catalog.LuciaPagesWithPrisma, catalog.LuciaPagesWithDrizzle,
	)
	appAuthServerTable = authServerTable(
		catalog.NextAuthAppBase, catalog.NextAuthAppWithPrisma, catalog.NextAuthAppWithDrizzle,
		catalog.LuciaAppBase, catalog.LuciaAppWithPrisma, catalog.LuciaAppWithDrizzle,
	)
)

// authInstaller copies the server-side auth setup for the chosen provider.
type authInstaller struct{}

func (authInstaller) Name() string { return "auth" }

func (authInstaller) Applies(sel selection.Selection) bool { return sel.HasAuth() }

func (authInstaller) Plan(sel selection.Selection) Plan {
	table := pagesAuthServerTable
	if sel.UseAppRouter {
		table = appAuthServerTable
	}
	return Plan{
		Copies:       []CopyInstruction{instruction(table, sel, DestAuthServer)},
		Dependencies: []DependencyDeclaration{{Packages: authDependencies(sel)}},
	}
}

func authDependencies(sel selection.Selection) []string {
	switch sel.Auth {
	case selection.AuthNextAuth:
		pkgs := []string{"next-auth"}
		switch sel.Data {
		case selection.DataPrisma:
			pkgs = append(pkgs, "@next-auth/prisma-adapter")
		case selection.DataDrizzle:
			pkgs = append(pkgs, "@auth/drizzle-adapter")
		}
		return pkgs
	case selection.AuthLucia:
		pkgs := []string{"lucia", "@lucia-auth/oauth"}
		switch sel.Data {
		case selection.DataPrisma:
			pkgs = append(pkgs, "@lucia-auth/adapter-prisma")
		case selection.DataDrizzle:
			pkgs = append(pkgs, "@lucia-auth/adapter-mysql")
		}
		return pkgs
	}
	return nil
}

func homePageTable(lucia, auth, base catalog.TemplateID) DecisionTable {
	return DecisionTable{Slot: catalog.SlotHomePage, Rules: []Rule{
		{Auth: AuthIsLucia, Data: DataAny, Template: lucia},
		{Auth: AuthIsNextAuth, Data: DataAny, Template: auth},
		{Auth: AuthAbsent, Data: DataAny, Template: base},
	}}
}

var (
	pagesHomeTable = homePageTable(catalog.PagesIndexWithLucia, catalog.PagesIndexWithAuth, catalog.PagesIndexBase)
	appHomeTable   = homePageTable(catalog.AppPageWithLucia, catalog.AppPageWithAuth, catalog.AppPageBase)
)

// pageInstaller copies the landing page that calls the example router.
type pageInstaller struct{}

func (pageInstaller) Name() string { return "page" }

func (pageInstaller) Applies(selection.Selection) bool { return true }

func (pageInstaller) Plan(sel selection.Selection) Plan {
	if sel.UseAppRouter {
		return Plan{Copies: []CopyInstruction{instruction(appHomeTable, sel, DestAppPage)}}
	}
	return Plan{Copies: []CopyInstruction{instruction(pagesHomeTable, sel, DestPagesIndex)}}
}
