package router

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Route names.
const (
	Home         = "home"
	About        = "about"
	Recipes      = "recipes"
	RecipeDetail = "recipe-detail"

	Login          = "login"
	Register       = "register"
	ForgotPassword = "forgot-password"
	ResetPassword  = "reset-password"
	VerifyEmail    = "verify-email"

	Dashboard    = "dashboard"
	Generate     = "generate"
	Favorites    = "favorites"
	Profile      = "profile"
	ProfileEdit  = "profile-edit"
	RecipeCreate = "recipe-create"
	RecipeEdit   = "recipe-edit"

	AdminDashboard  = "admin-dashboard"
	AdminUsers      = "admin-users"
	AdminUserDetail = "admin-user-detail"
	AdminRecipes    = "admin-recipes"
	AdminAnalytics  = "admin-analytics"
)

type Meta struct {
	RequiresAuth              bool
	RequiresAdmin             bool
	RequiresEmailVerification bool
}

func (m Meta) Merge(o Meta) Meta {
	return Meta{
		RequiresAuth:              m.RequiresAuth || o.RequiresAuth,
		RequiresAdmin:             m.RequiresAdmin || o.RequiresAdmin,
		RequiresEmailVerification: m.RequiresEmailVerification || o.RequiresEmailVerification,
	}
}

// Route is a navigable view. Meta already includes the layout's meta.
type Route struct {
	Name string
	Path string
	Meta Meta
}

type layout struct {
	prefix   string
	meta     Meta
	children []Route
}

var layouts = []layout{
	{
		prefix: "/",
		children: []Route{
			{Name: Home, Path: ""},
			{Name: About, Path: "about"},
			{Name: Recipes, Path: "recipes"},
			{Name: RecipeDetail, Path: "recipes/{id}"},
		},
	},
	{
		prefix: "/",
		children: []Route{
			{Name: Login, Path: "login"},
			{Name: Register, Path: "register"},
			{Name: ForgotPassword, Path: "forgot-password"},
			{Name: ResetPassword, Path: "reset-password"},
			{Name: VerifyEmail, Path: "verify-email"},
		},
	},
	{
		prefix: "/",
		meta:   Meta{RequiresAuth: true},
		children: []Route{
			{Name: Dashboard, Path: "dashboard"},
			{Name: Generate, Path: "generate", Meta: Meta{RequiresEmailVerification: true}},
			{Name: Favorites, Path: "favorites"},
			{Name: Profile, Path: "profile"},
			{Name: ProfileEdit, Path: "profile/edit"},
			{Name: RecipeCreate, Path: "recipes/create", Meta: Meta{RequiresEmailVerification: true}},
			{Name: RecipeEdit, Path: "recipes/{id}/edit", Meta: Meta{RequiresEmailVerification: true}},
		},
	},
	{
		prefix: "/admin",
		meta:   Meta{RequiresAuth: true, RequiresAdmin: true},
		children: []Route{
			{Name: AdminDashboard, Path: ""},
			{Name: AdminUsers, Path: "users"},
			{Name: AdminUserDetail, Path: "users/{id}"},
			{Name: AdminRecipes, Path: "recipes"},
			{Name: AdminAnalytics, Path: "analytics"},
		},
	},
}

var (
	publicRoutes = map[string]bool{Home: true, About: true, Recipes: true, RecipeDetail: true}
	authRoutes   = map[string]bool{Login: true, Register: true, ForgotPassword: true, ResetPassword: true, VerifyEmail: true}
)

// Match is a route resolved to concrete parameters.
type Match struct {
	Route  Route
	Params map[string]string
	Path   string
}

// Table is the immutable set of routes.
type Table struct {
	routes    []Route
	byName    map[string]Route
	byPattern map[string]Route
	mux       *chi.Mux
}

func NewTable() *Table {
	t := &Table{
		byName:    make(map[string]Route),
		byPattern: make(map[string]Route),
		mux:       chi.NewMux(),
	}
	noop := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})
	for _, l := range layouts {
		for _, child := range l.children {
			r := Route{Name: child.Name, Path: joinPath(l.prefix, child.Path), Meta: l.meta.Merge(child.Meta)}
			t.routes = append(t.routes, r)
			t.byName[r.Name] = r
			t.byPattern[r.Path] = r
			t.mux.Get(r.Path, noop)
		}
	}
	return t
}

func joinPath(prefix, p string) string {
	switch {
	case p == "":
		return prefix
	case strings.HasSuffix(prefix, "/"):
		return prefix + p
	default:
		return prefix + "/" + p
	}
}

// Routes returns every route in declaration order.
func (t *Table) Routes() []Route {
	return append([]Route(nil), t.routes...)
}

func (t *Table) ByName(name string) (Route, bool) {
	r, ok := t.byName[name]
	return r, ok
}

// Named builds a Match for a route name, filling path parameters.
func (t *Table) Named(name string, params map[string]string) (Match, bool) {
	r, ok := t.byName[name]
	if !ok {
		return Match{}, false
	}
	path := r.Path
	for k, v := range params {
		path = strings.ReplaceAll(path, "{"+k+"}", v)
	}
	return Match{Route: r, Params: copyParams(params), Path: path}, true
}

// Resolve finds the route serving path.
func (t *Table) Resolve(path string) (Match, bool) {
	rctx := chi.NewRouteContext()
	pattern := t.mux.Find(rctx, http.MethodGet, path)
	r, ok := t.byPattern[pattern]
	if !ok {
		return Match{}, false
	}
	params := make(map[string]string, len(rctx.URLParams.Keys))
	for i, k := range rctx.URLParams.Keys {
		params[k] = rctx.URLParams.Values[i]
	}
	return Match{Route: r, Params: params, Path: path}, true
}

func IsPublic(name string) bool   { return publicRoutes[name] }
func IsAuthOnly(name string) bool { return authRoutes[name] }

func copyParams(p map[string]string) map[string]string {
	out := make(map[string]string, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
