// Package assistant implements KopiBot, the scripted coffee assistant.
package assistant

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/Rrens/kopiloka/internal/domain"
)

// Price tiers used by the price rule
const (
	BudgetThreshold = 150000
	PremiumCeiling  = 250000
)

const (
	priceTierSize   = 3
	productListSize = 5
)

// DefaultRule names the fallback reply in Classify results
const DefaultRule = "default"

// Rule pairs a predicate over lower-cased input with the reply it produces
type Rule struct {
	Name  string
	Match func(input string) bool
	Reply func(r *Responder, catalog []domain.Product) string
}

var greetingPattern = regexp.MustCompile(`^(halo|hai|hi|hello|selamat|pagi|siang|malam|apa kabar)`)

func containsAny(terms ...string) func(string) bool {
	return func(input string) bool {
		for _, t := range terms {
			if strings.Contains(input, t) {
				return true
			}
		}
		return false
	}
}

func static(text string) func(*Responder, []domain.Product) string {
	return func(*Responder, []domain.Product) string { return text }
}

// Rules is the ordered rule table; the first match wins
var Rules = []Rule{
	{Name: "greeting", Match: greetingPattern.MatchString, Reply: (*Responder).greeting},
	{Name: "arabika", Match: containsAny("arabika", "arabica"), Reply: static(arabikaReply)},
	{Name: "robusta", Match: containsAny("robusta"), Reply: static(robustaReply)},
	{Name: "brewing", Match: containsAny("seduh", "brew", "cara buat", "v60", "french press"), Reply: static(brewingReply)},
	{Name: "origins", Match: containsAny("daerah", "asal", "origin", "sumatra", "toraja", "gayo"), Reply: static(originsReply)},
	{Name: "recommendation", Match: containsAny("rekomen", "saran", "pilih", "cocok"), Reply: static(recommendationReply)},
	{Name: "health", Match: containsAny("sehat", "manfaat", "kesehatan", "kafein"), Reply: static(healthReply)},
	{Name: "storage", Match: containsAny("simpan", "storage", "awet"), Reply: static(storageReply)},
	{Name: "price", Match: containsAny("harga", "murah", "mahal", "budget"), Reply: func(_ *Responder, c []domain.Product) string { return priceReply(c) }},
	{Name: "product", Match: containsAny("produk", "jual", "beli"), Reply: func(_ *Responder, c []domain.Product) string { return productReply(c) }},
}

// Responder answers chat input from the rule table. It is safe for
// concurrent use.
type Responder struct {
	rules []Rule

	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures a Responder
type Option func(*Responder)

// WithRand sets the source used to pick greeting replies
func WithRand(rng *rand.Rand) Option {
	return func(r *Responder) { r.rng = rng }
}

// New creates a responder over the standard rule table
func New(opts ...Option) *Responder {
	r := &Responder{
		rules: Rules,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Respond returns the reply of the first matching rule, or DefaultReply
func (r *Responder) Respond(input string, catalog []domain.Product) string {
	if rule, ok := r.match(input); ok {
		return rule.Reply(r, catalog)
	}
	return DefaultReply
}

// Classify returns the name of the rule that would answer input
func (r *Responder) Classify(input string) string {
	if rule, ok := r.match(input); ok {
		return rule.Name
	}
	return DefaultRule
}

func (r *Responder) match(input string) (Rule, bool) {
	lower := strings.ToLower(input)
	for _, rule := range r.rules {
		if rule.Match(lower) {
			return rule, true
		}
	}
	return Rule{}, false
}

func (r *Responder) greeting([]domain.Product) string {
	r.mu.Lock()
	i := r.rng.Intn(len(greetingReplies))
	r.mu.Unlock()
	return greetingReplies[i]
}

// GreetingReplies returns a copy of the greeting pool
func GreetingReplies() []string {
	return append([]string(nil), greetingReplies...)
}

func priceReply(catalog []domain.Product) string {
	var budget, premium []string
	for _, p := range catalog {
		switch {
		case p.Price < BudgetThreshold:
			if len(budget) < priceTierSize {
				budget = append(budget, fmt.Sprintf("- %s - %s", p.Name, FormatRupiah(p.Price)))
			}
		case p.Price < PremiumCeiling:
			if len(premium) < priceTierSize {
				premium = append(premium, fmt.Sprintf("- %s - %s", p.Name, FormatRupiah(p.Price)))
			}
		}
	}

	var b strings.Builder
	b.WriteString("**Kategori Harga Kopi Kami:**\n\n💰 **Budget Friendly (< Rp 150rb):**\n")
	b.WriteString(strings.Join(budget, "\n"))
	b.WriteString("\n\n💎 **Premium (Rp 150-250rb):**\n")
	b.WriteString(strings.Join(premium, "\n"))
	b.WriteString("\n\nKunjungi Marketplace kami untuk melihat semua produk!")
	return b.String()
}

func productReply(catalog []domain.Product) string {
	n := productListSize
	if n > len(catalog) {
		n = len(catalog)
	}

	entries := make([]string, 0, n)
	for _, p := range catalog[:n] {
		entries = append(entries, fmt.Sprintf("☕ **%s** - %s\n   %s | %s roast | %s",
			p.Name, p.Origin, p.Category, p.RoastLevel, FormatRupiah(p.Price)))
	}

	var b strings.Builder
	b.WriteString("**Produk Kopi Tersedia di KOPILOKA:**\n\n")
	fmt.Fprintf(&b, "Kami memiliki %d varietas kopi dari seluruh Indonesia:\n\n", len(catalog))
	b.WriteString(strings.Join(entries, "\n\n"))
	b.WriteString("\n\n...dan masih banyak lagi!\n\nKunjungi halaman Marketplace untuk melihat semua produk kami.")
	return b.String()
}
