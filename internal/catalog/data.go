package catalog

import "residence-facilities/internal/domain"

var categories = []domain.Category{
	{ID: domain.CategoryAll, Label: "Semua Fasilitas"},
	{ID: "olahraga", Label: "Olahraga"},
	{ID: "keamanan", Label: "Keamanan"},
	{ID: "komunitas", Label: "Komunitas"},
	{ID: "teknologi", Label: "Teknologi"},
	{ID: "sosial", Label: "Sosial"},
	{ID: "rekreasi", Label: "Rekreasi"},
	{ID: "cafe", Label: "Cafe"},
	{ID: "minimarket", Label: "Minimarket"},
}

var facilities = []domain.Facility{
	{
		Title:       "Fitness Center",
		Category:    "olahraga",
		BadgeLabel:  "Premium",
		BadgeStyle:  "primary",
		Description: "Gym lengkap dengan peralatan modern dan instruktur profesional untuk menjaga kebugaran penghuni.",
		Features:    []string{"Peralatan cardio & beban", "Personal trainer", "Buka 06.00 - 22.00"},
		IconRef:     "dumbbell",
		ColorTag:    "blue",
	},
	{
		Title:       "Swimming Pool",
		Category:    "olahraga",
		BadgeLabel:  "Populer",
		BadgeStyle:  "secondary",
		Description: "Kolam renang outdoor dengan area khusus anak dan dek berjemur.",
		Features:    []string{"Kolam dewasa 25m", "Kolam anak", "Lifeguard bersertifikat"},
		IconRef:     "waves",
		ColorTag:    "cyan",
	},
	{
		Title:       "Keamanan 24 Jam",
		Category:    "keamanan",
		BadgeLabel:  "24/7",
		BadgeStyle:  "destructive",
		Description: "Petugas keamanan terlatih berjaga sepanjang hari di setiap akses masuk kawasan.",
		Features:    []string{"Patroli rutin", "Pos jaga di setiap gerbang", "Respon darurat cepat"},
		IconRef:     "shield",
		ColorTag:    "red",
	},
	{
		Title:       "Akses Kartu & CCTV",
		Category:    "keamanan",
		BadgeLabel:  "Smart",
		BadgeStyle:  "outline",
		Description: "Sistem akses kartu di lobi dan lift serta CCTV yang dipantau dari ruang kontrol.",
		Features:    []string{"Kartu akses per unit", "CCTV di area publik", "Rekaman 30 hari"},
		IconRef:     "camera",
		ColorTag:    "slate",
	},
	{
		Title:       "Community Hall",
		Category:    "komunitas",
		BadgeLabel:  "Serbaguna",
		BadgeStyle:  "secondary",
		Description: "Aula serbaguna untuk acara warga, arisan, hingga perayaan keluarga.",
		Features:    []string{"Kapasitas 150 orang", "Sound system", "Reservasi melalui pengelola"},
		IconRef:     "users",
		ColorTag:    "amber",
	},
	{
		Title:       "Smart Home System",
		Category:    "teknologi",
		BadgeLabel:  "Baru",
		BadgeStyle:  "primary",
		Description: "Kendali lampu, pendingin ruangan, dan kunci pintu langsung dari aplikasi ponsel.",
		Features:    []string{"Smart lock", "Kontrol lampu & AC", "Integrasi asisten suara"},
		IconRef:     "smartphone",
		ColorTag:    "violet",
	},
	{
		Title:       "Co-Working Space",
		Category:    "teknologi",
		BadgeLabel:  "Wi-Fi Cepat",
		BadgeStyle:  "outline",
		Description: "Ruang kerja bersama yang tenang dengan internet berkecepatan tinggi.",
		Features:    []string{"Internet fiber 1 Gbps", "Ruang meeting", "Printer & scanner"},
		IconRef:     "wifi",
		ColorTag:    "indigo",
	},
	{
		Title:       "Taman & BBQ Area",
		Category:    "sosial",
		BadgeLabel:  "Keluarga",
		BadgeStyle:  "secondary",
		Description: "Taman hijau dengan gazebo dan area barbeque untuk berkumpul bersama tetangga.",
		Features:    []string{"Gazebo", "Pemanggang BBQ", "Area piknik"},
		IconRef:     "trees",
		ColorTag:    "green",
	},
	{
		Title:       "Children Playground",
		Category:    "rekreasi",
		BadgeLabel:  "Anak",
		BadgeStyle:  "secondary",
		Description: "Area bermain anak dengan lantai karet yang aman dan wahana yang beragam.",
		Features:    []string{"Lantai karet anti-cedera", "Perosotan & ayunan", "Diawasi CCTV"},
		IconRef:     "baby",
		ColorTag:    "pink",
	},
	{
		Title:       "Jogging Track",
		Category:    "rekreasi",
		BadgeLabel:  "Outdoor",
		BadgeStyle:  "outline",
		Description: "Lintasan jogging mengelilingi kawasan dengan pepohonan rindang.",
		Features:    []string{"Panjang 1,2 km", "Penerangan malam", "Titik istirahat"},
		IconRef:     "footprints",
		ColorTag:    "emerald",
	},
	{
		Title:       "Rooftop Cafe",
		Category:    "cafe",
		BadgeLabel:  "View Kota",
		BadgeStyle:  "primary",
		Description: "Cafe di lantai atap dengan pemandangan kota untuk bersantai atau bekerja.",
		Features:    []string{"Kopi spesialti", "Menu sarapan", "Buka hingga 23.00"},
		IconRef:     "coffee",
		ColorTag:    "orange",
	},
	{
		Title:       "Minimarket",
		Category:    "Minimarket",
		BadgeLabel:  "Praktis",
		BadgeStyle:  "secondary",
		Description: "Minimarket di lantai dasar untuk kebutuhan harian penghuni.",
		Features:    []string{"Kebutuhan pokok", "Layanan antar ke unit", ""},
		IconRef:     "shopping-cart",
		ColorTag:    "yellow",
	},
}
