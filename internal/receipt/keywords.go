package receipt

import (
	"sort"

	"github.com/atlasdev/atlas/internal/model"
)

// merchantInfo describes how a matched keyword classifies a receipt.
type merchantInfo struct {
	Name        string // display label for the establishment
	Category    string
	Subcategory string
	Type        string // essencial or variavel
}

// merchantKeywords is the static merchant taxonomy, keyed by lowercase
// keyword. Matching is substring-based and case-insensitive, so short keys
// like "bar" can fire inside longer words; that looseness is accepted because
// receipt text is too noisy for word boundaries to hold up.
var merchantKeywords = map[string]merchantInfo{
	// Alimentação - delivery e fora de casa (variável)
	"ifood":     {Name: "iFood", Category: "alimentacao", Subcategory: "delivery_ifood", Type: model.TypeDiscretionary},
	"next":      {Name: "Next (iFood)", Category: "alimentacao", Subcategory: "delivery_ifood", Type: model.TypeDiscretionary},
	"uber eats": {Name: "Uber Eats", Category: "alimentacao", Subcategory: "delivery_uber", Type: model.TypeDiscretionary},
	"rappi":     {Name: "Rappi", Category: "alimentacao", Subcategory: "delivery_rappi", Type: model.TypeDiscretionary},
	"restaurante": {Name: "Restaurante", Category: "alimentacao", Subcategory: "restaurante", Type: model.TypeDiscretionary},
	"lanchonete":  {Name: "Lanchonete", Category: "alimentacao", Subcategory: "lanchonete", Type: model.TypeDiscretionary},
	"bar":         {Name: "Bar", Category: "alimentacao", Subcategory: "bar", Type: model.TypeDiscretionary},

	// Alimentação básica (essencial)
	"mercado":      {Name: "Mercado", Category: "alimentacao", Subcategory: "mercado", Type: model.TypeEssential},
	"supermercado": {Name: "Supermercado", Category: "alimentacao", Subcategory: "mercado", Type: model.TypeEssential},
	"feira":        {Name: "Feira", Category: "alimentacao", Subcategory: "feira", Type: model.TypeEssential},
	"padaria":      {Name: "Padaria", Category: "alimentacao", Subcategory: "padaria", Type: model.TypeEssential},

	// Transporte por aplicativo (variável)
	"uber": {Name: "Uber", Category: "transporte", Subcategory: "uber", Type: model.TypeDiscretionary},
	"99":   {Name: "99", Category: "transporte", Subcategory: "99", Type: model.TypeDiscretionary},
	"taxi": {Name: "Taxi", Category: "transporte", Subcategory: "taxi", Type: model.TypeDiscretionary},

	// Transporte - combustível (essencial)
	"posto":       {Name: "Posto de Combustível", Category: "transporte", Subcategory: "combustivel", Type: model.TypeEssential},
	"combustivel": {Name: "Combustível", Category: "transporte", Subcategory: "combustivel", Type: model.TypeEssential},
	"gasolina":    {Name: "Gasolina", Category: "transporte", Subcategory: "combustivel", Type: model.TypeEssential},

	// Assinaturas (variável)
	"netflix":  {Name: "Netflix", Category: "assinaturas", Subcategory: "streaming", Type: model.TypeDiscretionary},
	"spotify":  {Name: "Spotify", Category: "assinaturas", Subcategory: "streaming", Type: model.TypeDiscretionary},
	"disney":   {Name: "Disney+", Category: "assinaturas", Subcategory: "streaming", Type: model.TypeDiscretionary},
	"hbo":      {Name: "HBO Max", Category: "assinaturas", Subcategory: "streaming", Type: model.TypeDiscretionary},
	"youtube":  {Name: "YouTube Premium", Category: "assinaturas", Subcategory: "streaming", Type: model.TypeDiscretionary},
	"academia": {Name: "Academia", Category: "assinaturas", Subcategory: "academia", Type: model.TypeDiscretionary},

	// Lazer (variável)
	"cinema": {Name: "Cinema", Category: "lazer", Subcategory: "cinema", Type: model.TypeDiscretionary},
	"teatro": {Name: "Teatro", Category: "lazer", Subcategory: "teatro", Type: model.TypeDiscretionary},
	"show":   {Name: "Show", Category: "lazer", Subcategory: "show", Type: model.TypeDiscretionary},

	// Saúde (essencial)
	"farmacia": {Name: "Farmácia", Category: "saude", Subcategory: "farmacia", Type: model.TypeEssential},
	"drogaria": {Name: "Drogaria", Category: "saude", Subcategory: "farmacia", Type: model.TypeEssential},
	"hospital": {Name: "Hospital", Category: "saude", Subcategory: "hospital", Type: model.TypeEssential},
	"clinica":  {Name: "Clínica", Category: "saude", Subcategory: "clinica", Type: model.TypeEssential},

	// Hospedagem e viagens (variável)
	"airbnb":  {Name: "Airbnb", Category: "lazer", Subcategory: "hospedagem", Type: model.TypeDiscretionary},
	"booking": {Name: "Booking.com", Category: "lazer", Subcategory: "hospedagem", Type: model.TypeDiscretionary},
	"hotel":   {Name: "Hotel", Category: "lazer", Subcategory: "hospedagem", Type: model.TypeDiscretionary},
	"pousada": {Name: "Pousada", Category: "lazer", Subcategory: "hospedagem", Type: model.TypeDiscretionary},

	// Intermediários de pagamento (outros)
	"mercado pago": {Name: "Mercado Pago", Category: model.CategoryOther, Subcategory: model.SubcategoryPayment, Type: model.TypeDiscretionary},
	"picpay":       {Name: "PicPay", Category: model.CategoryOther, Subcategory: model.SubcategoryPayment, Type: model.TypeDiscretionary},
	"paypal":       {Name: "PayPal", Category: model.CategoryOther, Subcategory: model.SubcategoryPayment, Type: model.TypeDiscretionary},

	// E-commerce (variável, outros)
	"amazon":        {Name: "Amazon", Category: model.CategoryOther, Subcategory: "compras_online", Type: model.TypeDiscretionary},
	"mercado livre": {Name: "Mercado Livre", Category: model.CategoryOther, Subcategory: "compras_online", Type: model.TypeDiscretionary},
	"shopee":        {Name: "Shopee", Category: model.CategoryOther, Subcategory: "compras_online", Type: model.TypeDiscretionary},
	"aliexpress":    {Name: "AliExpress", Category: model.CategoryOther, Subcategory: "compras_online", Type: model.TypeDiscretionary},
	"shein":         {Name: "Shein", Category: model.CategoryOther, Subcategory: "compras_online", Type: model.TypeDiscretionary},
	"magazine luiza": {Name: "Magazine Luiza", Category: model.CategoryOther, Subcategory: "compras_online", Type: model.TypeDiscretionary},
	"americanas":     {Name: "Americanas", Category: model.CategoryOther, Subcategory: "compras_online", Type: model.TypeDiscretionary},

	// Contas e utilidades (essencial)
	"energia":    {Name: "Conta de Energia", Category: "contas", Subcategory: "energia", Type: model.TypeEssential},
	"luz":        {Name: "Conta de Luz", Category: "contas", Subcategory: "energia", Type: model.TypeEssential},
	"agua":       {Name: "Conta de Água", Category: "contas", Subcategory: "agua", Type: model.TypeEssential},
	"internet":   {Name: "Internet", Category: "contas", Subcategory: "internet", Type: model.TypeEssential},
	"telefone":   {Name: "Telefone", Category: "contas", Subcategory: "telefone", Type: model.TypeEssential},
	"celular":    {Name: "Celular", Category: "contas", Subcategory: "telefone", Type: model.TypeEssential},
	"aluguel":    {Name: "Aluguel", Category: "contas", Subcategory: "aluguel", Type: model.TypeEssential},
	"condominio": {Name: "Condomínio", Category: "contas", Subcategory: "condominio", Type: model.TypeEssential},

	// Educação
	"curso":        {Name: "Curso", Category: "educacao", Subcategory: "curso", Type: model.TypeDiscretionary},
	"faculdade":    {Name: "Faculdade", Category: "educacao", Subcategory: "faculdade", Type: model.TypeEssential},
	"universidade": {Name: "Universidade", Category: "educacao", Subcategory: "faculdade", Type: model.TypeEssential},
	"escola":       {Name: "Escola", Category: "educacao", Subcategory: "escola", Type: model.TypeEssential},
	"livro":        {Name: "Livro", Category: "educacao", Subcategory: "livros", Type: model.TypeDiscretionary},
	"livraria":     {Name: "Livraria", Category: "educacao", Subcategory: "livros", Type: model.TypeDiscretionary},

	// Serviços pessoais (variável)
	"barbeiro":   {Name: "Barbeiro", Category: "servicos", Subcategory: "beleza", Type: model.TypeDiscretionary},
	"barbearia":  {Name: "Barbearia", Category: "servicos", Subcategory: "beleza", Type: model.TypeDiscretionary},
	"salao":      {Name: "Salão de Beleza", Category: "servicos", Subcategory: "beleza", Type: model.TypeDiscretionary},
	"manicure":   {Name: "Manicure", Category: "servicos", Subcategory: "beleza", Type: model.TypeDiscretionary},
	"estetica":   {Name: "Estética", Category: "servicos", Subcategory: "beleza", Type: model.TypeDiscretionary},
	"lavanderia": {Name: "Lavanderia", Category: "servicos", Subcategory: "limpeza", Type: model.TypeDiscretionary},

	// Pets
	"petshop":     {Name: "Pet Shop", Category: "pets", Subcategory: "petshop", Type: model.TypeDiscretionary},
	"veterinario": {Name: "Veterinário", Category: "pets", Subcategory: "veterinario", Type: model.TypeEssential},

	// Bancos (outros)
	"nubank":    {Name: "Nubank", Category: model.CategoryOther, Subcategory: "banco", Type: model.TypeDiscretionary},
	"inter":     {Name: "Banco Inter", Category: model.CategoryOther, Subcategory: "banco", Type: model.TypeDiscretionary},
	"itau":      {Name: "Itaú", Category: model.CategoryOther, Subcategory: "banco", Type: model.TypeDiscretionary},
	"bradesco":  {Name: "Bradesco", Category: model.CategoryOther, Subcategory: "banco", Type: model.TypeDiscretionary},
	"santander": {Name: "Santander", Category: model.CategoryOther, Subcategory: "banco", Type: model.TypeDiscretionary},
	"caixa":     {Name: "Caixa Econômica", Category: model.CategoryOther, Subcategory: "banco", Type: model.TypeDiscretionary},
}

// keywordsByLength holds every keyword sorted longest-first, computed once at
// startup. Longest-first is the load-bearing invariant of the classifier:
// "mercado pago" must be tried before "mercado".
var keywordsByLength = sortKeywords()

func sortKeywords() []string {
	keywords := make([]string, 0, len(merchantKeywords))
	for keyword := range merchantKeywords {
		keywords = append(keywords, keyword)
	}
	sort.Slice(keywords, func(i, j int) bool {
		if len(keywords[i]) != len(keywords[j]) {
			return len(keywords[i]) > len(keywords[j])
		}
		return keywords[i] < keywords[j]
	})
	return keywords
}
