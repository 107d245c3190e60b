package assistant_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/Rrens/kopiloka/internal/assistant"
	"github.com/Rrens/kopiloka/internal/catalog"
	"github.com/Rrens/kopiloka/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) []domain.Product {
	t.Helper()
	c, err := catalog.Load()
	require.NoError(t, err)
	return c.Products()
}

func TestClassify(t *testing.T) {
	r := assistant.New()

	tests := []struct {
		input string
		want  string
	}{
		{"Halo", "greeting"},
		{"selamat pagi KopiBot", "greeting"},
		{"Apa kabar?", "greeting"},
		{"Halo, ceritakan soal arabika", "greeting"},
		{"ceritakan soal Arabica", "arabika"},
		{"Apa perbedaan Arabika dan Robusta?", "arabika"},
		{"robusta dong", "robusta"},
		{"cara seduh kopi", "brewing"},
		// "menyeduh" does not contain "seduh"
		{"Cara menyeduh kopi yang benar", assistant.DefaultRule},
		{"pakai V60 gimana", "brewing"},
		{"Kopi dari daerah mana yang paling enak?", "origins"},
		{"kopi toraja", "origins"},
		{"Rekomendasikan kopi untuk pemula", "recommendation"},
		{"manfaat kopi", "health"},
		{"berapa kafein", "health"},
		{"cara simpan biji kopi", "storage"},
		{"harga murah dong", "price"},
		{"budget saya kecil", "price"},
		{"mau beli kopi", "product"},
		{"produk apa saja", "product"},
		{"xyzzy123", assistant.DefaultRule},
		{"", assistant.DefaultRule},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Classify(tt.input))
		})
	}
}

func TestRespond_GreetingWinsOverArabika(t *testing.T) {
	r := assistant.New()

	got := r.Respond("Halo, ceritakan soal arabika", testCatalog(t))

	assert.Contains(t, assistant.GreetingReplies(), got)
	assert.NotContains(t, got, "Kopi Arabika")
}

func TestRespond_GreetingIsDeterministicWithSeed(t *testing.T) {
	a := assistant.New(assistant.WithRand(rand.New(rand.NewSource(7))))
	b := assistant.New(assistant.WithRand(rand.New(rand.NewSource(7))))

	for i := 0; i < 5; i++ {
		assert.Equal(t, a.Respond("hai", nil), b.Respond("hai", nil))
	}
}

func TestRespond_Default(t *testing.T) {
	r := assistant.New()

	assert.Equal(t, assistant.DefaultReply, r.Respond("xyzzy123", testCatalog(t)))
	assert.Equal(t, assistant.DefaultReply, r.Respond("", nil))
}

func TestRespond_Robusta(t *testing.T) {
	r := assistant.New()

	want := "**Kopi Robusta** memiliki karakteristik yang berbeda:\n" +
		"- Kadar kafein lebih tinggi (2-2.7%)\n" +
		"- Rasa lebih bold dan pahit\n" +
		"- Body lebih tebal\n" +
		"- Tumbuh di ketinggian 200-800 mdpl\n" +
		"- Cocok untuk: Espresso, kopi susu, campuran blend\n\n" +
		"**Rekomendasi Robusta kami:**\n" +
		"1. Lampung Robusta - Earthy & Bold\n" +
		"2. Temanggung Java - Perfect for Espresso\n" +
		"3. Aceh Ulee Kareng - Smoky & Intense"

	assert.Equal(t, want, r.Respond("robusta dong", testCatalog(t)))
}

func TestRespond_PriceTiers(t *testing.T) {
	r := assistant.New()
	products := testCatalog(t)

	got := r.Respond("harga murah dong", products)

	want := "**Kategori Harga Kopi Kami:**\n\n" +
		"💰 **Budget Friendly (< Rp 150rb):**\n" +
		"- Lampung Robusta - Rp 85.000\n" +
		"- Temanggung Java - Rp 95.000\n" +
		"- Aceh Ulee Kareng - Rp 75.000\n\n" +
		"💎 **Premium (Rp 150-250rb):**\n" +
		"- Gayo Premium - Rp 185.000\n" +
		"- Toraja Sapan - Rp 210.000\n" +
		"- Bali Kintamani - Rp 165.000\n\n" +
		"Kunjungi Marketplace kami untuk melihat semua produk!"
	assert.Equal(t, want, got)
}

func TestRespond_PriceTierBoundaries(t *testing.T) {
	r := assistant.New()
	products := []domain.Product{
		{Name: "Below", Price: 149999},
		{Name: "AtThreshold", Price: 150000},
		{Name: "AtCeiling", Price: 250000},
	}

	got := r.Respond("harga", products)

	budget, premium, found := strings.Cut(got, "Premium (Rp 150-250rb)")
	require.True(t, found)
	assert.Contains(t, budget, "- Below - Rp 149.999")
	assert.NotContains(t, budget, "AtThreshold")
	assert.Contains(t, premium, "- AtThreshold - Rp 150.000")
	assert.NotContains(t, got, "AtCeiling")
}

func TestRespond_ProductListing(t *testing.T) {
	r := assistant.New()
	products := testCatalog(t)

	got := r.Respond("produk apa saja yang dijual?", products)

	assert.True(t, strings.HasPrefix(got, "**Produk Kopi Tersedia di KOPILOKA:**\n\nKami memiliki 12 varietas kopi"))
	assert.Contains(t, got, "☕ **Gayo Premium** - Gayo, Aceh\n   Arabika | light roast | Rp 185.000")
	assert.Contains(t, got, "☕ **Temanggung Java**")
	assert.NotContains(t, got, "Aceh Ulee Kareng")
	assert.True(t, strings.HasSuffix(got, "Kunjungi halaman Marketplace untuk melihat semua produk kami."))
}

func TestRespond_ProductListingShortCatalog(t *testing.T) {
	r := assistant.New()

	got := r.Respond("beli", []domain.Product{{Name: "Solo", Origin: "Aceh", Category: "Robusta", RoastLevel: domain.RoastDark, Price: 1000}})

	assert.Contains(t, got, "Kami memiliki 1 varietas kopi")
	assert.Contains(t, got, "Robusta | dark roast | Rp 1.000")
}

func TestRespond_DoesNotMutateCatalog(t *testing.T) {
	r := assistant.New()
	products := testCatalog(t)
	before := append([]domain.Product(nil), products...)

	_ = r.Respond("harga", products)
	_ = r.Respond("produk", products)

	assert.Equal(t, before, products)
}

func TestFormatRupiah(t *testing.T) {
	assert.Equal(t, "Rp 0", assistant.FormatRupiah(0))
	assert.Equal(t, "Rp 950", assistant.FormatRupiah(950))
	assert.Equal(t, "Rp 185.000", assistant.FormatRupiah(185000))
	assert.Equal(t, "Rp 1.000.000", assistant.FormatRupiah(1000000))
}
