package finanflow

import "slices"

// Category names the core logic relies on.
const (
	CategoryRevenue    = "Receitas"
	CategoryCommercial = "Comercial"

	SubcategoryCommission = "Comissão de Vendedores"

	// DefaultSubcategory is used when a category has no configured subcategory.
	DefaultSubcategory = "Geral"
)

// Taxonomy maps a category to its ordered list of allowed subcategories.
//
// It is advisory: the ledger stores any category or subcategory string.
type Taxonomy struct {
	categories []string
	subs       map[string][]string
}

// NewTaxonomy builds a taxonomy, categories keep the order they are given in.
func NewTaxonomy(categories []string, subs map[string][]string) *Taxonomy {
	return &Taxonomy{categories: slices.Clone(categories), subs: subs}
}

// DefaultTaxonomy is the configuration of an online school business.
var DefaultTaxonomy = NewTaxonomy(
	[]string{
		CategoryRevenue,
		"Marketing & Tráfego",
		"Equipe Criativa & Suporte",
		CategoryCommercial,
		"Infraestrutura Digital",
		"Administrativo",
	},
	map[string][]string{
		CategoryRevenue: {
			"Venda de Cursos",
			"Matrículas",
			"Mentorias",
			"Outros",
		},
		"Marketing & Tráfego": {
			"Facebook/Instagram Ads",
			"Google/YouTube Ads",
			"TikTok Ads",
			"Influenciadores",
			"Ferramentas de Marketing",
		},
		"Equipe Criativa & Suporte": {
			"Gestor de Tráfego",
			"Social Media",
			"Designer Gráfico",
			"Editor de Vídeo",
			"Suporte ao Aluno",
		},
		CategoryCommercial: {
			SubcategoryCommission,
			"Salário Vendedores",
			"Ferramentas de CRM",
		},
		"Infraestrutura Digital": {
			"Plataforma de Curso (Area de Membros)",
			"Hospedagem de Vídeo",
			"Servidores/Site",
			"Automação/E-mail Mkt",
		},
		"Administrativo": {
			"Impostos",
			"Taxas Bancárias/Gateway",
			"Contabilidade",
			"Prolabore",
			"Outros",
		},
	},
)

// Categories returns the configured categories in order.
func (t *Taxonomy) Categories() []string { return slices.Clone(t.categories) }

// Subcategories returns the subcategories allowed for category, nil if unknown.
func (t *Taxonomy) Subcategories(category string) []string {
	return slices.Clone(t.subs[category])
}

// Has reports whether the pair is configured.
func (t *Taxonomy) Has(category, subcategory string) bool {
	return slices.Contains(t.subs[category], subcategory)
}

// DefaultSubcategory returns the first subcategory of category, or
// DefaultSubcategory when the category has none.
func (t *Taxonomy) DefaultSubcategory(category string) string {
	if subs := t.subs[category]; len(subs) > 0 {
		return subs[0]
	}
	return DefaultSubcategory
}
