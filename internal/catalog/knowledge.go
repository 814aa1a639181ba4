package catalog

// SkincareKnowledge is the static domain knowledge included verbatim in the
// prompt handed to the generative backend.
const SkincareKnowledge = `SKIN DISEASE INFORMATION:

1. ACTINIC KERATOSIS
- Keratosis aktinik adalah pertumbuhan kasar dan bersisik pada kulit akibat paparan sinar matahari berlebihan
- Biasanya muncul di area yang sering terkena sinar matahari seperti wajah, tangan, dan lengan
- Perawatan: Gunakan sunscreen SPF 50+ setiap hari, hindari paparan sinar matahari langsung
- Konsultasikan dengan dokter kulit untuk treatment medis seperti cryotherapy atau krim topikal

2. BASAL CELL CARCINOMA
- Kanker kulit paling umum, biasanya muncul sebagai benjolan mengkilap atau luka yang tidak sembuh
- Disebabkan oleh paparan sinar UV jangka panjang
- Perawatan: Segera konsultasi dengan dokter kulit, mungkin memerlukan pembedahan atau terapi radiasi
- Pencegahan: Gunakan sunscreen broad-spectrum SPF 30+ setiap hari

3. DERMATOFIBROMA
- Benjolan keras jinak pada kulit, biasanya berwarna coklat atau merah
- Tidak berbahaya tetapi bisa terasa gatal atau nyeri jika tertekan
- Perawatan: Umumnya tidak memerlukan treatment, gunakan pelembab untuk menjaga kelembaban kulit
- Jika mengganggu, konsultasi dengan dokter untuk pengangkatan

4. MELANOCYTIC NEVUS (TAHI LALAT)
- Pertumbuhan kulit jinak yang berisi melanosit (sel pigmen)
- Normal memiliki tahi lalat, tetapi perhatikan perubahan bentuk, warna, atau ukuran
- Perawatan: Lindungi dari sinar matahari dengan sunscreen
- Konsultasi dokter jika tahi lalat berubah atau mencurigakan

5. PIGMENTED BENIGN KERATOSIS
- Pertumbuhan kulit jinak berwarna coklat atau hitam
- Umum terjadi seiring bertambahnya usia
- Perawatan: Gunakan produk dengan retinol atau vitamin C untuk mencerahkan kulit
- Sunscreen wajib untuk mencegah hiperpigmentasi

6. SEBORRHEIC KERATOSIS
- Pertumbuhan kulit jinak berwarna coklat, hitam atau kuning
- Terlihat seperti kutil tetapi tidak disebabkan oleh virus
- Perawatan: Tidak memerlukan treatment kecuali mengganggu, gunakan pelembab rutin
- Konsultasi dokter jika ingin diangkat untuk alasan estetika

7. SQUAMOUS CELL CARCINOMA
- Jenis kanker kulit yang berkembang dari sel skuamosa di epidermis
- Muncul sebagai benjolan keras atau luka bersisik yang tidak sembuh
- Perawatan: Segera konsultasi dokter kulit, memerlukan pembedahan atau terapi
- Pencegahan penting: Sunscreen SPF 50+ dan hindari paparan UV

8. VASCULAR LESION
- Kelainan pembuluh darah yang terlihat di kulit seperti hemangioma atau spider veins
- Bisa muncul sebagai bintik merah atau benang merah di kulit
- Perawatan: Gunakan produk yang menenangkan seperti centella atau niacinamide
- Konsultasi dokter untuk laser treatment jika mengganggu

GENERAL SKINCARE TIPS:
- Rutin membersihkan wajah 2x sehari dengan gentle cleanser
- Gunakan pelembab sesuai jenis kulit (oily, dry, combination)
- WAJIB pakai sunscreen SPF 30+ setiap hari, bahkan di dalam ruangan
- Hindari menggaruk atau memencet jerawat
- Minum air putih minimal 8 gelas per hari
- Tidur cukup 7-8 jam per hari
- Kelola stress dengan baik
- Konsumsi makanan bergizi tinggi antioksidan`
