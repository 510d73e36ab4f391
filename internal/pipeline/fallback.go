package pipeline

import "IntelFeed/internal/domain"

// Static per-category datasets served whenever a pipeline yields nothing, so
// the response envelope is never empty. Each table belongs to its pipeline
// and is safe to update independently of the scraping logic.

// DefaultNIS2Items covers the announcements category.
var DefaultNIS2Items = []domain.FeedItem{
	{
		Title:       "Direttiva NIS2: obblighi di notifica degli incidenti per i soggetti essenziali",
		Description: "I soggetti essenziali e importanti devono notificare gli incidenti significativi al CSIRT Italia entro le scadenze previste dal decreto di recepimento.",
		URL:         "https://www.acn.gov.it/portale/nis",
		Date:        "17 ottobre 2024",
		Category:    domain.CategoryNIS2,
	},
	{
		Title:       "Recepimento della direttiva NIS2 in Italia: in vigore il d.lgs. 138/2024",
		Description: "Il decreto legislativo di recepimento della direttiva NIS2 definisce ambito di applicazione, autorita' competenti e regime sanzionatorio.",
		URL:         "https://www.acn.gov.it/portale/nis",
		Date:        "16 ottobre 2024",
		Category:    domain.CategoryNIS2,
	},
	{
		Title:       "Registrazione al portale ACN: scadenze e modalita' per i soggetti NIS2",
		Description: "Le organizzazioni rientranti nel perimetro NIS2 devono censirsi sulla piattaforma digitale dell'Agenzia per la Cybersicurezza Nazionale.",
		URL:         "https://www.acn.gov.it/portale/nis",
		Date:        "28 febbraio 2025",
		Category:    domain.CategoryNIS2,
	},
}

// DefaultThreatItems covers the advisory category.
var DefaultThreatItems = []domain.FeedItem{
	{
		Title:       "Sfruttamento attivo di vulnerabilita' nei dispositivi di rete perimetrali",
		Description: "Rilevate campagne di sfruttamento attivo contro apparati VPN e firewall esposti; si raccomanda l'applicazione immediata delle patch disponibili.",
		URL:         "https://www.csirt.gov.it/contenuti",
		Date:        "Recente",
		Category:    domain.CategoryThreat,
		Severity:    domain.SeverityCritical,
	},
	{
		Title:       "Campagne ransomware contro le infrastrutture sanitarie italiane",
		Description: "Gruppi ransomware prendono di mira strutture sanitarie con accessi iniziali via phishing; verificare backup offline e piani di ripristino.",
		URL:         "https://www.csirt.gov.it/contenuti",
		Date:        "Recente",
		Category:    domain.CategoryThreat,
		Severity:    domain.SeverityHigh,
	},
	{
		Title:       "Campagna di phishing a tema fatturazione contro la pubblica amministrazione",
		Description: "In corso una campagna di phishing che distribuisce allegati malevoli a tema fatturazione elettronica rivolta a enti pubblici e PMI.",
		URL:         "https://www.csirt.gov.it/contenuti",
		Date:        "Recente",
		Category:    domain.CategoryThreat,
		Severity:    domain.SeverityMedium,
	},
	{
		Title:       "Bollettino mensile: aggiornamenti di sicurezza dei principali vendor",
		Description: "Riepilogo degli aggiornamenti di sicurezza pubblicati dai principali produttori software, con priorita' di installazione consigliate.",
		URL:         "https://www.csirt.gov.it/contenuti",
		Date:        "Recente",
		Category:    domain.CategoryThreat,
		Severity:    domain.SeverityMedium,
	},
}

// DefaultCVEItems covers the vulnerability category.
var DefaultCVEItems = []domain.FeedItem{
	{
		Title:         "CVE-2024-3400: command injection in PAN-OS GlobalProtect",
		Description:   "Una vulnerabilita' di command injection nel gateway GlobalProtect di Palo Alto Networks consente esecuzione di codice remoto non autenticata.",
		URL:           "https://nvd.nist.gov/vuln/detail/CVE-2024-3400",
		Date:          "Recente",
		Category:      domain.CategoryCVE,
		Severity:      domain.SeverityCritical,
		CVEIdentifier: "CVE-2024-3400",
	},
	{
		Title:         "CVE-2024-21762: out-of-bounds write in FortiOS SSL-VPN",
		Description:   "Scrittura fuori dai limiti in FortiOS SSL-VPN sfruttabile da remoto senza autenticazione tramite richieste HTTP artefatte.",
		URL:           "https://nvd.nist.gov/vuln/detail/CVE-2024-21762",
		Date:          "Recente",
		Category:      domain.CategoryCVE,
		Severity:      domain.SeverityCritical,
		CVEIdentifier: "CVE-2024-21762",
	},
	{
		Title:         "CVE-2023-4863: heap buffer overflow in libwebp",
		Description:   "Overflow del buffer heap nella decodifica WebP, sfruttato in the wild attraverso immagini artefatte nei principali browser.",
		URL:           "https://nvd.nist.gov/vuln/detail/CVE-2023-4863",
		Date:          "Recente",
		Category:      domain.CategoryCVE,
		Severity:      domain.SeverityHigh,
		CVEIdentifier: "CVE-2023-4863",
	},
	{
		Title:         "CVE-2023-44487: HTTP/2 Rapid Reset denial of service",
		Description:   "L'abuso della cancellazione rapida degli stream HTTP/2 consente attacchi DDoS su larga scala contro server e proxy esposti.",
		URL:           "https://nvd.nist.gov/vuln/detail/CVE-2023-44487",
		Date:          "Recente",
		Category:      domain.CategoryCVE,
		Severity:      domain.SeverityHigh,
		CVEIdentifier: "CVE-2023-44487",
	},
}

// DefaultEPSSPredictions covers the exploit-prediction category.
var DefaultEPSSPredictions = []domain.EPSSPrediction{
	{
		CVEIdentifier:     "CVE-2016-10033",
		Vendor:            "PHPMailer",
		PredictionPercent: 94.42,
		CVSSScore:         9.8,
		Severity:          "CRITICAL",
		URL:               "https://nvd.nist.gov/vuln/detail/CVE-2016-10033",
	},
	{
		CVEIdentifier:     "CVE-2021-44228",
		Vendor:            "Apache Log4j",
		PredictionPercent: 97.53,
		CVSSScore:         10.0,
		Severity:          "CRITICAL",
		URL:               "https://nvd.nist.gov/vuln/detail/CVE-2021-44228",
	},
	{
		CVEIdentifier:     "CVE-2017-0144",
		Vendor:            "Microsoft Windows SMB",
		PredictionPercent: 97.45,
		CVSSScore:         8.1,
		Severity:          "HIGH",
		URL:               "https://nvd.nist.gov/vuln/detail/CVE-2017-0144",
	},
	{
		CVEIdentifier:     "CVE-2019-19781",
		Vendor:            "Citrix ADC",
		PredictionPercent: 97.52,
		CVSSScore:         9.8,
		Severity:          "CRITICAL",
		URL:               "https://nvd.nist.gov/vuln/detail/CVE-2019-19781",
	},
	{
		CVEIdentifier:     "CVE-2014-0160",
		Vendor:            "OpenSSL",
		PredictionPercent: 97.51,
		CVSSScore:         7.5,
		Severity:          "HIGH",
		URL:               "https://nvd.nist.gov/vuln/detail/CVE-2014-0160",
	},
	{
		CVEIdentifier:     "CVE-2023-23397",
		Vendor:            "Microsoft Outlook",
		PredictionPercent: 93.41,
		CVSSScore:         9.8,
		Severity:          "CRITICAL",
		URL:               "https://nvd.nist.gov/vuln/detail/CVE-2023-23397",
	},
}
