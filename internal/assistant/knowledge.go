package assistant

// Canned replies. The texts are rendered as lightweight markdown by clients.

var greetingReplies = []string{
	"Halo! Saya KopiBot, asisten AI KOPILOKA. Saya siap membantu Anda menemukan kopi yang sempurna! 🌿",
	"Selamat datang di KOPILOKA! Ada yang bisa saya bantu tentang kopi hari ini? ☕",
	"Hai! Saya di sini untuk membantu Anda menjelajahi dunia kopi Indonesia. Apa yang ingin Anda ketahui?",
}

const arabikaReply = "**Kopi Arabika** adalah jenis kopi premium dengan karakteristik:\n- Kadar kafein lebih rendah (1-1.5%)\n- Rasa lebih kompleks dan beragam\n- Aroma lebih harum dan fruity\n- Tumbuh di ketinggian 1000-2000 mdpl\n- Cocok untuk: Single origin, pour over, cold brew\n\n**Rekomendasi Arabika kami:**\n1. Gayo Premium - Fruity & Floral\n2. Toraja Sapan - Chocolate & Herbal\n3. Bali Kintamani - Berry & Wine"

const robustaReply = "**Kopi Robusta** memiliki karakteristik yang berbeda:\n- Kadar kafein lebih tinggi (2-2.7%)\n- Rasa lebih bold dan pahit\n- Body lebih tebal\n- Tumbuh di ketinggian 200-800 mdpl\n- Cocok untuk: Espresso, kopi susu, campuran blend\n\n**Rekomendasi Robusta kami:**\n1. Lampung Robusta - Earthy & Bold\n2. Temanggung Java - Perfect for Espresso\n3. Aceh Ulee Kareng - Smoky & Intense"

const brewingReply = "**Panduan Brewing Kopi:**\n\n☕ **Pour Over (V60/Chemex)**\n- Rasio: 1:15 (15g kopi : 225ml air)\n- Suhu: 92-96°C\n- Waktu: 2.5-3 menit\n- Cocok untuk: Arabika light-medium roast\n\n☕ **French Press**\n- Rasio: 1:12\n- Suhu: 93-96°C\n- Waktu: 4 menit\n- Cocok untuk: Medium-dark roast\n\n☕ **Espresso**\n- Rasio: 1:2\n- Suhu: 90-94°C\n- Waktu: 25-30 detik\n- Cocok untuk: Dark roast, blend"

const originsReply = "**Daerah Penghasil Kopi Indonesia:**\n\n🏔️ **Sumatra:**\n- Gayo (Arabika) - Fruity, low acidity\n- Mandailing - Full body, chocolate\n- Lampung (Robusta) - Bold, earthy\n\n🏔️ **Sulawesi:**\n- Toraja - Complex, spicy, herbal\n- Enrekang - Clean, sweet\n\n🏔️ **Jawa:**\n- Preanger - Clean cup, nutty\n- Ijen - Bright, citrusy\n\n🏔️ **Bali:**\n- Kintamani - Fruity, wine-like\n\n🏔️ **Papua:**\n- Wamena - Tea-like, floral"

const recommendationReply = "Untuk memberikan rekomendasi yang tepat, saya perlu tahu preferensi Anda:\n\n1. **Rasa yang disukai:**\n   - Fruity & acidic\n   - Chocolatey & nutty\n   - Bold & strong\n\n2. **Metode penyeduhan:**\n   - Manual brew (V60, French Press)\n   - Espresso machine\n   - Kopi tubruk/tradisional\n\n3. **Budget:**\n   - Ekonomis (< Rp 100rb/250g)\n   - Premium (Rp 100-200rb/250g)\n   - Super Premium (> Rp 200rb/250g)\n\nBeritahu saya preferensi Anda!"

const healthReply = "**Manfaat Kesehatan Kopi:**\n\n✅ Meningkatkan energi dan fokus\n✅ Kaya antioksidan\n✅ Dapat meningkatkan metabolisme\n✅ Mendukung kesehatan otak\n✅ Mengurangi risiko penyakit tertentu\n\n⚠️ **Tips sehat:**\n- Batasi 3-4 cangkir/hari\n- Hindari konsumsi setelah jam 2 siang\n- Pilih kopi tanpa gula berlebih\n- Minum air putih yang cukup"

const storageReply = "**Tips Penyimpanan Kopi:**\n\n🏠 **Biji Kopi:**\n- Simpan di wadah kedap udara\n- Jauhkan dari cahaya matahari\n- Suhu ruangan (20-25°C)\n- Jangan simpan di kulkas\n- Habiskan dalam 2-4 minggu setelah roasting\n\n☕ **Kopi Bubuk:**\n- Segera seduh setelah digiling\n- Jika disimpan, maksimal 1 minggu\n- Gunakan wadah kedap udara"

// DefaultReply is returned when no rule matches
const DefaultReply = "Terima kasih atas pertanyaannya! 😊\n\nSaya bisa membantu Anda dengan:\n\n1. **Informasi Kopi** - Arabika, Robusta, Liberika\n2. **Cara Penyeduhan** - Pour over, French Press, Espresso\n3. **Asal Daerah** - Gayo, Toraja, Bali, dll\n4. **Rekomendasi Kopi** - Sesuai selera Anda\n5. **Tips Penyimpanan** - Agar kopi tetap segar\n6. **Manfaat Kesehatan** - Kopi dan kesehatan\n7. **Harga & Produk** - Katalog kopi kami\n\nSilakan tanyakan topik yang Anda minati!"

// WelcomeMessage seeds a new conversation
const WelcomeMessage = "Halo! Saya **KopiBot**, asisten AI KOPILOKA yang siap membantu Anda! 🌿☕\n\nSaya dapat membantu Anda dengan:\n- Informasi jenis-jenis kopi\n- Rekomendasi kopi sesuai selera\n- Tips penyeduhan (brewing)\n- Informasi daerah penghasil kopi\n- Dan banyak lagi!\n\nApa yang ingin Anda ketahui tentang kopi hari ini?"

// ResetMessage seeds a conversation after an explicit reset
const ResetMessage = "Chat telah direset. Ada yang bisa saya bantu? ☕"

// SuggestedQuestions are offered while a conversation is still fresh
var SuggestedQuestions = []string{
	"Apa perbedaan Arabika dan Robusta?",
	"Rekomendasikan kopi untuk pemula",
	"Cara menyeduh kopi yang benar",
	"Kopi dari daerah mana yang paling enak?",
}
