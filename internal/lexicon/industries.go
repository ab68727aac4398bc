package lexicon

var defaultLexicon = New(builtinIndustries, builtinAliases)

var builtinAliases = map[string]string{
	"tech":                 "technology",
	"software":             "technology",
	"it":                   "technology",
	"medical":              "healthcare",
	"health":               "healthcare",
	"banking":              "finance",
	"financial services":   "finance",
	"advertising":          "marketing",
	"digital marketing":    "marketing",
	"teaching":             "education",
	"business development": "sales",
}

var builtinIndustries = []Industry{
	{
		Name: "technology",
		Mappings: []TermMapping{
			{Generic: "built", Specific: "engineered", Weight: 0.9, Context: []string{"system", "application", "service", "platform", "tool", "feature", "api"}},
			{Generic: "made", Specific: "developed", Weight: 0.8},
			{Generic: "fixed", Specific: "debugged", Weight: 0.8, Context: []string{"bug", "issue", "error", "defect", "crash", "code"}},
			{Generic: "customers", Specific: "end users", Weight: 0.6},
			{Generic: "improved", Specific: "optimized", Weight: 0.7},
			{Generic: "computer", Specific: "infrastructure", Weight: 0.4, Context: []string{"systems", "servers", "network"}},
			{Generic: "handled", Specific: "orchestrated", Weight: 0.5},
			{Generic: "software", Specific: "scalable applications", Weight: 0.3},
			{Generic: "team", Specific: "cross-functional squad", Weight: 0.5, Context: []string{"engineering", "product", "worked", "collaborated"}},
			{Generic: "set up", Specific: "deployed", Weight: 0.6},
		},
		Keywords: []string{
			"agile", "cloud computing", "CI/CD", "microservices", "scalability",
			"system design", "automation", "APIs", "DevOps", "data-driven",
		},
		ActionVerbs:    []string{"architected", "engineered", "deployed", "automated", "refactored", "scaled", "integrated"},
		TechnicalTerms: []string{"Kubernetes", "Docker", "REST", "GraphQL", "distributed systems", "observability"},
	},
	{
		Name: "healthcare",
		Mappings: []TermMapping{
			{Generic: "customers", Specific: "patients", Weight: 0.9},
			{Generic: "clients", Specific: "patients", Weight: 0.8, Context: []string{"care", "treatment", "clinic", "health", "hospital"}},
			{Generic: "helped", Specific: "supported", Weight: 0.6},
			{Generic: "records", Specific: "EHR documentation", Weight: 0.7, Context: []string{"patient", "medical", "charts", "documentation"}},
			{Generic: "rules", Specific: "regulatory requirements", Weight: 0.6},
			{Generic: "safety", Specific: "clinical risk management", Weight: 0.5},
			{Generic: "team", Specific: "multidisciplinary care staff", Weight: 0.5, Context: []string{"nurses", "physicians", "clinical", "care"}},
			{Generic: "checked", Specific: "assessed", Weight: 0.7},
		},
		Keywords: []string{
			"patient care", "HIPAA compliance", "clinical documentation", "EHR",
			"care coordination", "quality improvement", "patient outcomes", "evidence-based practice",
		},
		ActionVerbs:    []string{"assessed", "administered", "coordinated", "documented", "triaged", "educated"},
		TechnicalTerms: []string{"Epic", "Cerner", "ICD-10", "HL7", "telehealth"},
	},
	{
		Name: "finance",
		Mappings: []TermMapping{
			{Generic: "money", Specific: "capital", Weight: 0.8},
			{Generic: "customers", Specific: "clients", Weight: 0.7},
			{Generic: "checked", Specific: "audited", Weight: 0.8, Context: []string{"accounts", "statements", "books", "ledger", "transactions", "reports"}},
			{Generic: "budget", Specific: "financial plan", Weight: 0.5},
			{Generic: "risks", Specific: "risk exposure", Weight: 0.6},
			{Generic: "rules", Specific: "regulatory compliance", Weight: 0.6},
			{Generic: "reports", Specific: "financial statements", Weight: 0.5, Context: []string{"quarterly", "monthly", "annual", "prepared"}},
			{Generic: "saved", Specific: "reduced costs by", Weight: 0.4, Context: []string{"$", "%", "percent", "dollars"}},
		},
		Keywords: []string{
			"financial modeling", "risk management", "forecasting", "compliance",
			"portfolio management", "GAAP", "variance analysis", "due diligence",
		},
		ActionVerbs:    []string{"audited", "reconciled", "forecasted", "modeled", "underwrote", "allocated"},
		TechnicalTerms: []string{"Bloomberg", "SAP", "VBA", "DCF", "Sarbanes-Oxley"},
	},
	{
		Name: "marketing",
		Mappings: []TermMapping{
			{Generic: "customers", Specific: "target audience", Weight: 0.8},
			{Generic: "ads", Specific: "campaigns", Weight: 0.8},
			{Generic: "grew", Specific: "scaled", Weight: 0.6},
			{Generic: "posts", Specific: "content", Weight: 0.6, Context: []string{"social", "blog", "media", "instagram", "linkedin"}},
			{Generic: "sales", Specific: "conversions", Weight: 0.5, Context: []string{"campaign", "funnel", "online", "website"}},
			{Generic: "brand", Specific: "corporate identity", Weight: 0.4},
			{Generic: "results", Specific: "KPIs", Weight: 0.6},
		},
		Keywords: []string{
			"brand strategy", "SEO", "content marketing", "market research",
			"lead generation", "campaign management", "analytics", "customer acquisition",
		},
		ActionVerbs:    []string{"launched", "positioned", "amplified", "segmented", "converted", "promoted"},
		TechnicalTerms: []string{"Google Analytics", "HubSpot", "A/B testing", "SEM", "CRM"},
	},
	{
		Name: "education",
		Mappings: []TermMapping{
			{Generic: "taught", Specific: "instructed", Weight: 0.8},
			{Generic: "kids", Specific: "students", Weight: 0.9},
			{Generic: "customers", Specific: "learners", Weight: 0.7},
			{Generic: "lessons", Specific: "curriculum", Weight: 0.6, Context: []string{"designed", "planned", "developed", "created"}},
			{Generic: "tests", Specific: "assessments", Weight: 0.6},
			{Generic: "helped", Specific: "mentored", Weight: 0.5, Context: []string{"students", "learners", "peers", "tutoring"}},
		},
		Keywords: []string{
			"curriculum development", "differentiated instruction", "classroom management",
			"student engagement", "assessment design", "lesson planning", "educational technology",
		},
		ActionVerbs:    []string{"instructed", "facilitated", "mentored", "designed", "evaluated", "advised"},
		TechnicalTerms: []string{"LMS", "Canvas", "Google Classroom", "IEP", "formative assessment"},
	},
	{
		Name: "sales",
		Mappings: []TermMapping{
			{Generic: "customers", Specific: "accounts", Weight: 0.8},
			{Generic: "sold", Specific: "closed", Weight: 0.8},
			{Generic: "talked", Specific: "negotiated", Weight: 0.6, Context: []string{"clients", "customers", "deals", "contracts"}},
			{Generic: "goals", Specific: "quotas", Weight: 0.7},
			{Generic: "leads", Specific: "qualified pipeline", Weight: 0.5},
			{Generic: "grew", Specific: "expanded", Weight: 0.5},
		},
		Keywords: []string{
			"pipeline management", "account management", "quota attainment", "CRM",
			"consultative selling", "relationship building", "revenue growth", "prospecting",
		},
		ActionVerbs:    []string{"closed", "negotiated", "prospected", "exceeded", "expanded", "retained"},
		TechnicalTerms: []string{"Salesforce", "HubSpot", "Outreach", "MEDDIC", "SPIN selling"},
	},
}
