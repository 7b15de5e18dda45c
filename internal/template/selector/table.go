package selector

import (
	"fmt"

	"github.com/tacogips/t3init/internal/selection"
	"github.com/tacogips/t3init/internal/template/catalog"
)

// AuthMatch is the auth condition of a decision table row.
type AuthMatch int

const (
	// AuthAny matches every provider.
	AuthAny AuthMatch = iota
	// AuthAbsent matches only selection.AuthNone.
	AuthAbsent
	// AuthPresent matches any provider other than selection.AuthNone.
	AuthPresent
	// AuthIsNextAuth matches only selection.AuthNextAuth.
	AuthIsNextAuth
	// AuthIsLucia matches only selection.AuthLucia.
	AuthIsLucia
)

func (m AuthMatch) matches(a selection.AuthProvider) bool {
	switch m {
	case AuthAny:
		return true
	case AuthAbsent:
		return a == selection.AuthNone
	case AuthPresent:
		return a != selection.AuthNone
	case AuthIsNextAuth:
		return a == selection.AuthNextAuth
	case AuthIsLucia:
		return a == selection.AuthLucia
	}
	return false
}

func (m AuthMatch) String() string {
	switch m {
	case AuthAny:
		return "*"
	case AuthAbsent:
		return "no-auth"
	case AuthPresent:
		return "auth"
	case AuthIsNextAuth:
		return "next-auth"
	case AuthIsLucia:
		return "lucia"
	}
	return fmt.Sprintf("AuthMatch(%d)", int(m))
}

// DataMatch is the data layer condition of a decision table row.
type DataMatch int

const (
	// DataAny matches every data layer.
	DataAny DataMatch = iota
	// DataAbsent matches only selection.DataNone.
	DataAbsent
	// DataPresent matches any ORM.
	DataPresent
	// DataIsPrisma matches only selection.DataPrisma.
	DataIsPrisma
	// DataIsDrizzle matches only selection.DataDrizzle.
	DataIsDrizzle
)

func (m DataMatch) matches(d selection.DataLayer) bool {
	switch m {
	case DataAny:
		return true
	case DataAbsent:
		return d == selection.DataNone
	case DataPresent:
		return d != selection.DataNone
	case DataIsPrisma:
		return d == selection.DataPrisma
	case DataIsDrizzle:
		return d == selection.DataDrizzle
	}
	return false
}

func (m DataMatch) String() string {
	switch m {
	case DataAny:
		return "*"
	case DataAbsent:
		return "no-db"
	case DataPresent:
		return "db"
	case DataIsPrisma:
		return "prisma"
	case DataIsDrizzle:
		return "drizzle"
	}
	return fmt.Sprintf("DataMatch(%d)", int(m))
}

// Rule is one row of a DecisionTable.
type Rule struct {
	Auth     AuthMatch
	Data     DataMatch
	Template catalog.TemplateID
}

// Matches reports whether the rule applies to sel.
func (r Rule) Matches(sel selection.Selection) bool {
	return r.Auth.matches(sel.Auth) && r.Data.matches(sel.Data)
}

func (r Rule) String() string {
	return fmt.Sprintf("(%s, %s) -> %s", r.Auth, r.Data, r.Template)
}

// DecisionTable picks a template variant for one slot. Rows are listed in
// priority order and must be mutually exclusive over the selections the table
// is consulted for.
type DecisionTable struct {
	Slot  catalog.Slot
	Rules []Rule
}

// Lookup returns the template of the first matching row.
func (t DecisionTable) Lookup(sel selection.Selection) (catalog.TemplateID, bool) {
	for _, r := range t.Rules {
		if r.Matches(sel) {
			return r.Template, true
		}
	}
	return 0, false
}

// Resolve is Lookup for tables that are total over sel. A miss is a bug in
// the table and panics.
func (t DecisionTable) Resolve(sel selection.Selection) catalog.TemplateID {
	id, ok := t.Lookup(sel)
	if !ok {
		panic(fmt.Sprintf("selector: no %s template for %s", t.Slot, sel))
	}
	return id
}

// MatchingRules returns every row that matches sel.
func (t DecisionTable) MatchingRules(sel selection.Selection) []Rule {
	var out []Rule
	for _, r := range t.Rules {
		if r.Matches(sel) {
			out = append(out, r)
		}
	}
	return out
}

// fixed builds a single-row table that always yields id.
func fixed(slot catalog.Slot, id catalog.TemplateID) DecisionTable {
	return DecisionTable{Slot: slot, Rules: []Rule{{Auth: AuthAny, Data: DataAny, Template: id}}}
}

// combined builds the standard auth/data priority table:
// auth+db, auth-only, db-only, base.
func combined(slot catalog.Slot, authDB, auth, db, base catalog.TemplateID) DecisionTable {
	return DecisionTable{Slot: slot, Rules: []Rule{
		{Auth: AuthPresent, Data: DataPresent, Template: authDB},
		{Auth: AuthPresent, Data: DataAbsent, Template: auth},
		{Auth: AuthAbsent, Data: DataPresent, Template: db},
		{Auth: AuthAbsent, Data: DataAbsent, Template: base},
	}}
}

// perORM is combined with the data layer split per ORM.
func perORM(slot catalog.Slot, authPrisma, authDrizzle, auth, prisma, drizzle, base catalog.TemplateID) DecisionTable {
	return DecisionTable{Slot: slot, Rules: []Rule{
		{Auth: AuthPresent, Data: DataIsPrisma, Template: authPrisma},
		{Auth: AuthPresent, Data: DataIsDrizzle, Template: authDrizzle},
		{Auth: AuthPresent, Data: DataAbsent, Template: auth},
		{Auth: AuthAbsent, Data: DataIsPrisma, Template: prisma},
		{Auth: AuthAbsent, Data: DataIsDrizzle, Template: drizzle},
		{Auth: AuthAbsent, Data: DataAbsent, Template: base},
	}}
}
