package analysis

// Static lexicon tables. These are read-only reference data loaded once at
// process start; keyword lists are lower-cased at definition time and matched
// by substring containment, so root forms intentionally catch inflections
// ("mentor" matches "mentoring"). Category slices are ordered because several
// classifiers resolve ties and caps by definition order.

// keywordCategory is a named keyword list used for presence checks.
type keywordCategory struct {
	name     string
	keywords []string
}

// interestCategory carries a static description alongside its keywords.
type interestCategory struct {
	name        string
	keywords    []string
	description string
}

// traitCategory carries a static description and a static evidence-phrase
// list. Evidence is category-level and unrelated to which keywords matched.
type traitCategory struct {
	name        string
	keywords    []string
	description string
	evidence    []string
}

var stopWords = toSet([]string{
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for", "of", "with", "by",
	"is", "are", "was", "were", "be", "been", "have", "has", "had", "do", "does", "did",
	"will", "would", "could", "should", "may", "might", "can", "this", "that", "these",
	"those", "i", "you", "he", "she", "it", "we", "they", "me", "him", "her", "us", "them",
	"just", "like", "get", "got", "going", "come", "came", "make", "made", "take", "took",
	"know", "knew", "see", "saw", "think", "thought", "want", "wanted", "need", "needed",
	"work", "worked", "time", "times", "year", "years", "day", "days", "week", "weeks",
	"month", "months", "way", "ways", "good", "great", "new", "first", "last", "long",
	"little", "own", "other", "old", "right", "big", "high", "different", "small", "large",
	"next", "early", "young", "important", "few", "public", "bad", "same", "able", "also",
	"much", "more", "most", "some", "any", "all", "each", "every", "no", "not", "only",
	"very", "really", "quite", "rather", "pretty", "too", "so", "such", "well", "here",
	"there", "where", "when", "why", "how", "what", "who", "which", "whose", "whom",
})

var positiveEmotionWords = toSet([]string{
	"excited", "happy", "proud", "grateful", "inspired", "motivated", "confident",
	"optimistic", "enthusiastic", "joyful", "thrilled", "delighted", "amazing",
	"fantastic", "wonderful", "brilliant", "excellent", "outstanding", "incredible",
	"awesome",
})

var negativeEmotionWords = toSet([]string{
	"frustrated", "disappointed", "worried", "angry", "sad", "upset", "concerned",
	"stressed", "anxious", "annoyed", "devastated", "terrible", "awful", "horrible",
	"disgusting", "pathetic", "useless", "hate", "despise", "loathe",
})

var progressiveKeywords = []string{
	"diversity", "inclusion", "climate", "renewable", "equality", "social", "community",
	"sustainable", "progressive", "environmental", "justice", "fairness", "openness",
	"transparency", "collaboration", "empowerment", "innovation", "change", "reform",
}

var conservativeKeywords = []string{
	"tradition", "business", "profit", "efficiency", "market", "growth", "conservative",
	"stability", "proven", "established", "heritage", "values", "discipline", "order",
	"authority", "hierarchy", "structure", "consistency", "reliability", "security",
}

// topicCategories buckets frequency-ranked tokens; first matching category
// wins, unmatched tokens fall through to "General".
var topicCategories = []keywordCategory{
	{"Technology", []string{
		"tech", "technology", "software", "programming", "coding", "development", "ai",
		"artificial", "machine", "data", "algorithm", "code", "digital", "computer",
		"internet", "web", "app", "application", "system", "platform", "api", "database",
		"cloud", "security", "cyber", "blockchain", "crypto", "bitcoin", "ethereum",
	}},
	{"Business", []string{
		"business", "company", "startup", "entrepreneur", "founder", "ceo", "leadership",
		"management", "strategy", "marketing", "sales", "revenue", "profit", "investment",
		"funding", "venture", "capital", "market", "economy", "finance", "financial",
		"growth", "scale", "scaling", "expansion", "acquisition", "merger",
	}},
	{"Social", []string{
		"social", "community", "society", "people", "human", "humanity", "culture",
		"cultural", "diversity", "inclusion", "equality", "justice", "rights", "freedom",
		"democracy", "politics", "political", "government", "policy", "public", "welfare",
		"healthcare", "education", "environment", "climate", "sustainability",
	}},
	{"Personal", []string{
		"personal", "life", "living", "family", "friends", "relationship", "love",
		"happiness", "success", "achievement", "goal", "dream", "passion", "hobby",
		"interest", "travel", "food", "music", "art", "sport", "fitness", "health",
		"wellness", "mindfulness", "meditation", "balance", "work-life",
	}},
}

var interestCategories = []interestCategory{
	{
		name: "Technology & Innovation",
		keywords: []string{
			"tech", "technology", "innovation", "ai", "artificial", "machine", "software",
			"product", "startup", "coding", "programming", "development", "digital", "data",
			"algorithm", "machine learning", "artificial intelligence", "blockchain",
			"crypto", "cyber", "security", "cloud", "api", "database", "platform", "system",
			"app", "application", "code", "developer", "engineer", "programmer",
		},
		description: "Shows strong interest in technology, software development, and innovation",
	},
	{
		name: "Leadership & Management",
		keywords: []string{
			"team", "leadership", "management", "mentoring", "culture", "strategy", "vision",
			"executive", "director", "manager", "lead", "guide", "inspire", "motivate",
			"coach", "mentor", "supervise", "organize", "coordinate", "delegate", "empower",
			"influence", "decision", "strategic",
		},
		description: "Demonstrates leadership qualities and management experience",
	},
	{
		name: "Learning & Development",
		keywords: []string{
			"learning", "growth", "education", "development", "skill", "training", "course",
			"study", "knowledge", "expertise", "mastery", "improvement", "learn", "teach",
			"certification", "degree", "university", "college", "school", "book", "read",
			"research",
		},
		description: "Values continuous learning and professional development",
	},
	{
		name: "Social Impact",
		keywords: []string{
			"community", "diversity", "inclusion", "social", "impact", "sustainability",
			"environment", "climate", "equality", "justice", "charity", "volunteer", "help",
			"support", "give", "donate", "nonprofit", "social good", "change", "world",
			"society", "humanitarian",
		},
		description: "Committed to social causes and making a positive impact",
	},
	{
		name: "Business & Finance",
		keywords: []string{
			"business", "finance", "investment", "market", "economy", "revenue", "profit",
			"growth", "strategy", "entrepreneur", "startup", "venture", "capital", "funding",
			"money", "financial", "economic", "trading", "stocks", "invest", "fund", "sales",
			"marketing",
		},
		description: "Business-minded with strong financial and entrepreneurial focus",
	},
	{
		name: "Health & Wellness",
		keywords: []string{
			"health", "wellness", "fitness", "mental health", "workout", "exercise",
			"meditation", "mindfulness", "balance", "self-care", "healthy", "gym", "yoga",
			"mental", "physical", "nutrition", "diet", "lifestyle",
		},
		description: "Prioritizes health, wellness, and work-life balance",
	},
	{
		name: "Creative & Arts",
		keywords: []string{
			"creative", "art", "design", "music", "writing", "photography", "film",
			"culture", "aesthetic", "inspiration", "imagination", "artistic", "video",
			"content", "media", "beautiful",
		},
		description: "Creative and artistic with strong aesthetic sense",
	},
}

var personalityTraits = []traitCategory{
	{
		name: "Analytical",
		keywords: []string{
			"analyze", "analysis", "data", "research", "study", "examine", "evaluate",
			"assess", "metrics", "statistics", "logic", "reasoning", "critical", "thinking",
			"methodical", "systematic", "evidence", "proof", "conclusion", "hypothesis",
			"investigation",
		},
		description: "Demonstrates analytical thinking and data-driven decision making",
		evidence:    []string{"Uses analytical language", "References data and metrics", "Shows systematic thinking"},
	},
	{
		name: "Collaborative",
		keywords: []string{
			"team", "together", "collaborate", "partnership", "cooperation", "collective",
			"group", "unite", "support", "help", "assist", "work with", "join",
			"participate", "contribute", "share", "community", "we", "us", "our",
		},
		description: "Values teamwork and collaborative approaches",
		evidence:    []string{"Frequently mentions team activities", "Uses inclusive language", "Shows collaborative mindset"},
	},
	{
		name: "Innovative",
		keywords: []string{
			"innovation", "creative", "new", "breakthrough", "disrupt", "revolutionary",
			"cutting-edge", "pioneer", "invent", "innovative", "original", "unique", "novel",
			"groundbreaking", "advanced", "modern", "future", "next-generation",
		},
		description: "Shows innovative thinking and creative problem-solving",
		evidence:    []string{"Uses innovation-related vocabulary", "Mentions creative solutions", "Shows forward-thinking approach"},
	},
	{
		name: "Communicative",
		keywords: []string{
			"share", "discuss", "talk", "communicate", "present", "speak", "explain",
			"express", "conversation", "tell", "describe", "narrate", "articulate", "convey",
			"message", "story", "explanation", "discussion", "dialogue",
		},
		description: "Strong communication skills and expressive nature",
		evidence:    []string{"Uses descriptive language", "Shares stories and experiences", "Engages in discussions"},
	},
	{
		name: "Ambitious",
		keywords: []string{
			"goal", "achieve", "success", "ambition", "aspire", "excel", "outperform",
			"challenge", "strive", "reach", "target", "objective", "aim", "dream", "vision",
			"mission", "accomplish", "succeed", "win", "victory", "triumph",
		},
		description: "Goal-oriented with strong ambition and drive",
		evidence:    []string{"Sets and mentions goals", "Shows achievement orientation", "Uses success-related language"},
	},
	{
		name: "Empathetic",
		keywords: []string{
			"understand", "care", "support", "help", "listen", "compassion", "kindness",
			"empathy", "considerate", "thoughtful", "sensitive", "caring", "concerned",
			"worried", "feel", "emotion", "heart", "soul", "human", "people",
		},
		description: "Shows empathy and emotional intelligence",
		evidence:    []string{"Uses emotional language", "Shows concern for others", "Demonstrates understanding"},
	},
	{
		name: "Detail-oriented",
		keywords: []string{
			"detail", "precise", "accurate", "thorough", "meticulous", "careful", "specific",
			"exact", "comprehensive", "complete", "perfect", "flawless", "detailed",
		},
		description: "Pays attention to details and quality",
		evidence:    []string{"Uses precise language", "Mentions specific details", "Shows quality focus"},
	},
	{
		name: "Adaptable",
		keywords: []string{
			"adapt", "flexible", "change", "adjust", "evolve", "transform", "modify",
			"versatile", "dynamic", "grow", "learn", "improve", "update", "modernize",
			"upgrade",
		},
		description: "Adaptable and flexible in approach",
		evidence:    []string{"Mentions adaptation and change", "Shows flexibility", "Uses growth-oriented language"},
	},
}

var themeCategories = []keywordCategory{
	{"Technology & Innovation", []string{"tech", "innovation", "ai", "software", "product", "startup"}},
	{"Leadership & Management", []string{"team", "leadership", "management", "mentoring", "culture"}},
	{"Learning & Development", []string{"learning", "growth", "education", "development", "skill"}},
	{"Social Impact", []string{"community", "diversity", "inclusion", "social", "impact"}},
	{"Work-Life Balance", []string{"balance", "family", "health", "wellness", "recharge"}},
	{"Sustainability", []string{"renewable", "sustainable", "environment", "climate", "green"}},
}

var riskCategories = []keywordCategory{
	{"Controversial statements", []string{"hate", "discriminat", "racist", "sexist", "offensive", "inappropriate"}},
	{"Unprofessional behavior", []string{"drunk", "party", "inappropriate", "unprofessional", "wild", "crazy"}},
	{"Extreme views", []string{"extremist", "radical", "conspiracy", "extreme", "fanatic"}},
	{"Frequent negativity", []string{"always complain", "hate job", "toxic", "terrible", "awful", "worst"}},
	{"Inappropriate content", []string{"nsfw", "adult", "explicit", "sexual", "vulgar"}},
	{"Political extremism", []string{"fascist", "communist", "anarchist", "revolution", "overthrow"}},
	{"Substance references", []string{"drunk", "high", "stoned", "alcohol", "drugs", "smoking"}},
}

var formalWords = []string{
	"therefore", "however", "furthermore", "moreover", "consequently", "nevertheless",
	"accordingly", "subsequently",
}

var informalWords = []string{
	"gonna", "wanna", "gotta", "kinda", "sorta", "yeah", "nah", "cool", "awesome", "amazing",
}

var engagementWords = []string{
	"you", "your", "we", "us", "our", "together", "share", "discuss", "think", "believe",
	"opinion",
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
