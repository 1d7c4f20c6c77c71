package locale

// Labels holds the interface strings for one locale.
type Labels struct {
	Title            string `json:"title"`
	Subtitle         string `json:"subtitle"`
	Step1            string `json:"step1"`
	Step2            string `json:"step2"`
	Step3            string `json:"step3"`
	GenerateBtn      string `json:"generate_btn"`
	Back             string `json:"back"`
	Website          string `json:"website"`
	App              string `json:"app"`
	Both             string `json:"both"`
	CompanyName      string `json:"company_name"`
	WebsiteURL       string `json:"website_url"`
	Email            string `json:"email"`
	Country          string `json:"country"`
	Address          string `json:"address"`
	Date             string `json:"date"`
	Generating       string `json:"generating"`
	Complete         string `json:"complete"`
	Copy             string `json:"copy"`
	Copied           string `json:"copied"`
	Export           string `json:"export"`
	StartOver        string `json:"start_over"`
	GenerationFailed string `json:"generation_failed"`
	NotLegalAdvice   string `json:"not_legal_advice"`
	NotFound         string `json:"not_found"`
}

var labels = map[Locale]Labels{
	English: {
		Title:            "Generate Legal Policies",
		Subtitle:         "Where will your policy be used? Click to select.",
		Step1:            "Select Policy",
		Step2:            "Enter Details",
		Step3:            "Review",
		GenerateBtn:      "Generate Policy",
		Back:             "Back",
		Website:          "Website",
		App:              "App",
		Both:             "Both",
		CompanyName:      "Company / Site Name",
		WebsiteURL:       "Website URL",
		Email:            "Contact Email",
		Country:          "Country",
		Address:          "Physical Address",
		Date:             "Effective Date",
		Generating:       "Generating your document with AI...",
		Complete:         "Document Ready",
		Copy:             "Copy Text",
		Copied:           "Copied!",
		Export:           "Download Markdown",
		StartOver:        "Create Another Policy",
		GenerationFailed: "Failed to generate content. Check API Key.",
		NotLegalAdvice:   "Not legal advice. Consult a lawyer.",
		NotFound:         "Page not found",
	},
	French: {
		Title:            "Générer des Politiques Légales",
		Subtitle:         "Où votre politique sera-t-elle utilisée ? Cliquez pour sélectionner.",
		Step1:            "Choisir la Politique",
		Step2:            "Entrer les Détails",
		Step3:            "Revoir",
		GenerateBtn:      "Générer la Politique",
		Back:             "Retour",
		Website:          "Site Web",
		App:              "Application",
		Both:             "Les Deux",
		CompanyName:      "Nom de l'entreprise / Site",
		WebsiteURL:       "URL du Site Web",
		Email:            "Email de Contact",
		Country:          "Pays",
		Address:          "Adresse Physique",
		Date:             "Date d'entrée en vigueur",
		Generating:       "Génération de votre document par IA...",
		Complete:         "Document Prêt",
		Copy:             "Copier le texte",
		Copied:           "Copié !",
		Export:           "Télécharger en Markdown",
		StartOver:        "Créer une autre politique",
		GenerationFailed: "Échec de la génération du contenu. Vérifiez la clé API.",
		NotLegalAdvice:   "Ceci n'est pas un conseil juridique. Consultez un avocat.",
		NotFound:         "Page introuvable",
	},
	Russian: {
		Title:            "Генератор Юридических Документов",
		Subtitle:         "Где будет использоваться ваша политика? Нажмите для выбора.",
		Step1:            "Выбор политики",
		Step2:            "Введите данные",
		Step3:            "Просмотр",
		GenerateBtn:      "Создать документ",
		Back:             "Назад",
		Website:          "Веб-сайт",
		App:              "Приложение",
		Both:             "Оба варианта",
		CompanyName:      "Название компании / сайта",
		WebsiteURL:       "URL веб-сайта",
		Email:            "Контактный Email",
		Country:          "Страна",
		Address:          "Физический адрес",
		Date:             "Дата вступления в силу",
		Generating:       "Генерация документа с помощью ИИ...",
		Complete:         "Документ готов",
		Copy:             "Копировать",
		Copied:           "Скопировано!",
		Export:           "Скачать Markdown",
		StartOver:        "Создать еще",
		GenerationFailed: "Не удалось создать документ. Проверьте ключ API.",
		NotLegalAdvice:   "Не является юридической консультацией. Обратитесь к юристу.",
		NotFound:         "Страница не найдена",
	},
}
