package catalog

import "github.com/dermalens/backend/internal/domain"

// products is the authored store catalog. Prices are in rupiah.
var products = []domain.Product{
	{
		ID:            "1",
		Name:          "Cetaphil Gentle Skin Cleanser",
		Price:         150000,
		Category:      "Pembersih",
		ForConditions: []string{"Jerawat", "Kulit Sensitif", "Dermatitis"},
		Description:   "Pembersih wajah lembut untuk kulit sensitif dan berjerawat. Formula non-soap, pH balanced, tidak mengandung pewangi. Cocok untuk pembersihan sehari-hari tanpa membuat kulit kering. Dermatologically tested dan hypoallergenic. Dapat digunakan dengan atau tanpa air. Ideal untuk kondisi acne, rosacea, dan post-procedure skin.",
		Ingredients:   "Water, Cetyl Alcohol, Propylene Glycol, Sodium Lauryl Sulfate, Stearyl Alcohol",
		Usage:         "Aplikasikan ke wajah basah, pijat lembut, bilas dengan air. Gunakan 2x sehari pagi dan malam.",
	},
	{
		ID:            "2",
		Name:          "La Roche-Posay Effaclar Duo+",
		Price:         320000,
		Category:      "Perawatan Jerawat",
		ForConditions: []string{"Jerawat", "Bekas Jerawat", "Acne Prone Skin"},
		Description:   "Treatment anti-jerawat dengan teknologi dual action. Mengandung 5.5% Niacinamide untuk mencerahkan bekas jerawat, Salicylic Acid untuk membersihkan pori, dan Piroctone Olamine sebagai antibakteri. Mengurangi jerawat hingga 50% dalam 4 minggu. Non-comedogenic dan oil-free. Cocok untuk kulit berminyak dan acne-prone.",
		Ingredients:   "Niacinamide 5.5%, Salicylic Acid, Piroctone Olamine, La Roche-Posay Thermal Water",
		Usage:         "Aplikasikan tipis ke seluruh wajah atau area berjerawat setelah cleansing, hindari area mata. Gunakan 1-2x sehari.",
	},
	{
		ID:            "3",
		Name:          "Avene Thermal Spring Water",
		Price:         180000,
		Category:      "Spray Thermal",
		ForConditions: []string{"Kulit Sensitif", "Dermatitis", "Rosacea", "Sunburn"},
		Description:   "Spray air thermal murni dari sumber Avene, Perancis. Mengandung mineral dan trace elements yang menenangkan kulit. Soothing, anti-inflammatory, dan mengurangi kemerahan. Steril dan bebas preservatives. Cocok untuk kulit sensitif, iritasi, sunburn, dan post-procedure. Dapat digunakan sebagai setting spray atau refresh skin.",
		Ingredients:   "Avene Thermal Spring Water 100%",
		Usage:         "Semprot ke wajah dari jarak 20cm, biarkan meresap 1-2 menit, tepuk lembut kelebihan air. Gunakan kapan saja.",
	},
	{
		ID:            "4",
		Name:          "Wardah Nature Daily Aloe Vera Gel",
		Price:         25000,
		Category:      "Pelembab",
		ForConditions: []string{"Kulit Kering", "Luka Bakar Ringan", "Sunburn", "Iritasi"},
		Description:   "Gel aloe vera murni 100% untuk melembabkan dan menenangkan kulit. Tekstur ringan, cepat menyerap, tidak lengket. Mengandung vitamin A, C, E untuk nutrisi kulit. Multi-fungsi: pelembab wajah, body lotion, hair mask, atau after-sun care. Hypoallergenic dan cocok untuk semua jenis kulit. Produk lokal berkualitas dengan harga terjangkau.",
		Ingredients:   "Aloe Barbadensis Leaf Extract 100%, Vitamin A, C, E",
		Usage:         "Aplikasikan secukupnya ke area yang diinginkan. Untuk wajah gunakan tipis-tipis. Dapat digunakan 2-3x sehari.",
	},
	{
		ID:            "5",
		Name:          "Somethinc Calm Down Centella Serum",
		Price:         89000,
		Category:      "Serum",
		ForConditions: []string{"Jerawat", "Kulit Sensitif", "Kemerahan", "Barrier Rusak"},
		Description:   "Serum dengan 100,000ppm Centella Asiatica untuk menenangkan kulit. Mengandung Madecassoside, Asiaticoside, Madecassic Acid untuk repair skin barrier. Plus 10% Niacinamide untuk brighten dan control sebum. Hypoallergenic, fragrance-free, alcohol-free. Cocok untuk acne-prone, sensitive skin, dan rosacea. Produk lokal dengan formula setara brand internasional.",
		Ingredients:   "Centella Asiatica 100,000ppm, Niacinamide 10%, Madecassoside, Asiaticoside",
		Usage:         "Aplikasikan 2-3 tetes ke wajah setelah toner, sebelum moisturizer. Gunakan pagi dan malam. Dapat dicampur dengan moisturizer.",
	},
	{
		ID:            "6",
		Name:          "Bioderma Atoderm Cream",
		Price:         250000,
		Category:      "Pelembab Intensif",
		ForConditions: []string{"Eksim", "Dermatitis", "Kulit Sangat Kering", "Psoriasis"},
		Description:   "Pelembab intensive untuk kondisi kulit sangat kering, eksim, dan dermatitis. Formula Skin Barrier Therapy dengan Lipigenium complex untuk restore lipid barrier. Mengandung Niacinamide dan Vitamin PP untuk anti-inflammatory. Tekstur rich dan creamy, melembabkan hingga 24 jam. Hypoallergenic, fragrance-free, dan non-comedogenic. Cocok untuk bayi, anak, dan dewasa.",
		Ingredients:   "Lipigenium Complex, Niacinamide, Vitamin PP, Glycerin, Shea Butter",
		Usage:         "Aplikasikan ke kulit bersih 1-2x sehari. Untuk area sangat kering aplikasikan lebih sering. Gunakan setelah mandi.",
	},
	{
		ID:            "7",
		Name:          "Emina Sun Protection SPF 30 PA+++",
		Price:         35000,
		Category:      "Sunscreen",
		ForConditions: []string{"Semua Jenis Kulit", "Daily Protection"},
		Description:   "Sunscreen broad-spectrum dengan SPF 30 PA+++ untuk perlindungan dari UVA dan UVB. Formula ringan, tidak lengket, cepat menyerap. Tidak meninggalkan whitecast. Water-resistant dan cocok sebagai base makeup. Non-comedogenic, oil-free, fragrance-free. Harga sangat terjangkau untuk penggunaan sehari-hari. Reapply setiap 2-3 jam untuk perlindungan optimal.",
		Ingredients:   "Ethylhexyl Methoxycinnamate, Titanium Dioxide, Zinc Oxide, Vitamin E",
		Usage:         "Aplikasikan sebagai step terakhir skincare 15 menit sebelum keluar rumah. Gunakan 2 jari amount untuk wajah dan leher. Reapply tiap 2-3 jam.",
	},
	{
		ID:            "8",
		Name:          "Physiogel Daily Moisture Therapy",
		Price:         220000,
		Category:      "Pelembab",
		ForConditions: []string{"Kulit Kering", "Dermatitis", "Kulit Sensitif", "Barrier Rusak"},
		Description:   "Pelembab dengan teknologi BioMimic untuk meniru lipid barrier alami kulit. Mengandung ceramides dan lipids untuk strengthen skin barrier. Hypoallergenic, fragrance-free, paraben-free, dan non-comedogenic. Clinically proven untuk kulit kering dan sensitif. Tekstur ringan tetapi moisturizing. Cocok untuk daily use dan dapat digunakan untuk bayi hingga dewasa.",
		Ingredients:   "BioMimic Technology, Ceramides, Lipids, Glycerin, Dimethicone",
		Usage:         "Aplikasikan ke wajah dan tubuh setelah cleansing. Gunakan 2x sehari pagi dan malam. Dapat digunakan sebelum sunscreen.",
	},
	{
		ID:            "9",
		Name:          "Skintific 5X Ceramide Barrier Repair Moisturizer",
		Price:         135000,
		Category:      "Pelembab",
		ForConditions: []string{"Barrier Rusak", "Kulit Sensitif", "Kulit Kering"},
		Description:   "Moisturizer dengan 5X Ceramide complex untuk intensive barrier repair. Mengandung 5% Niacinamide untuk brighten dan control sebum. Formula lightweight gel-cream yang cepat menyerap. Hypoallergenic, fragrance-free, dan alcohol-free. Cocok untuk semua jenis kulit terutama dehydrated dan sensitive skin. Produk lokal dengan teknologi Korea.",
		Ingredients:   "5X Ceramide Complex, Niacinamide 5%, Hyaluronic Acid, Centella Asiatica",
		Usage:         "Aplikasikan sebagai step terakhir skincare pagi dan malam. Untuk kulit sangat kering, layer 2-3x hingga fully absorbed.",
	},
	{
		ID:            "10",
		Name:          "Azarine Hydrasoothe Sunscreen Gel SPF 45",
		Price:         55000,
		Category:      "Sunscreen",
		ForConditions: []string{"Semua Jenis Kulit", "Kulit Berminyak", "Acne Prone"},
		Description:   "Sunscreen gel dengan SPF 45 PA++++ untuk maximum protection. Formula gel yang ultra-light, matte finish, tidak lengket. Mengandung Hyaluronic Acid dan Centella Asiatica untuk hydrate dan soothe. Tidak ada whitecast sama sekali. Cocok untuk kulit berminyak dan acne-prone. Water and sweat resistant. Harga affordable untuk pemakaian generous.",
		Ingredients:   "Ethylhexyl Methoxycinnamate, Titanium Dioxide, Hyaluronic Acid, Centella Asiatica",
		Usage:         "Aplikasikan generous amount (2 jari) ke wajah 15 menit sebelum aktivitas outdoor. Reapply setiap 2 jam atau setelah berkeringat.",
	},
}
