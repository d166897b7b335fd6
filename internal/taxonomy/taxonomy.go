// Package taxonomy defines the fixed registry of 23 academic disciplines
// that classification results may reference. The table is process-wide,
// read-only, and loaded at init; discipline IDs are contiguous 1–23.
package taxonomy

import "fmt"

// Discipline is a single entry in the discipline registry. Keywords are the
// signal terms used by the paper parser to generate classification hints.
type Discipline struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Keywords    []string `json:"keywords"`
	Description string   `json:"description"`
}

// Count is the number of disciplines in the registry.
const Count = 23

// Resolve returns the discipline for the given ID.
// Returns ErrUnknownDiscipline for IDs outside 1–23.
func Resolve(id int) (Discipline, error) {
	if id < 1 || id > Count {
		return Discipline{}, fmt.Errorf("%w: %d", ErrUnknownDiscipline, id)
	}
	return disciplines[id-1], nil
}

// All returns every discipline ordered by ascending ID.
func All() []Discipline {
	out := make([]Discipline, Count)
	copy(out, disciplines[:])
	return out
}

var disciplines = [Count]Discipline{
	{
		ID:   1,
		Name: "Computer Science",
		Keywords: []string{
			"AI", "ML", "machine learning", "neural network", "deep learning",
			"algorithm", "software", "programming", "NLP", "computer vision",
			"data mining", "artificial intelligence", "computing", "database",
		},
		Description: "Artificial intelligence, machine learning, algorithms, software engineering",
	},
	{
		ID:   2,
		Name: "Medicine",
		Keywords: []string{
			"clinical", "diagnosis", "treatment", "patient", "medical",
			"disease", "therapy", "hospital", "physician", "healthcare",
			"surgical", "pharmaceutical", "pathology", "oncology",
		},
		Description: "Clinical research, diagnostics, therapeutics, patient care",
	},
	{
		ID:   3,
		Name: "Chemistry",
		Keywords: []string{
			"compound", "reaction", "synthesis", "molecule", "chemical",
			"catalyst", "polymer", "organic", "inorganic", "spectroscopy",
			"electrochemistry", "biochemistry", "analytical",
		},
		Description: "Chemical compounds, reactions, synthesis, molecular analysis",
	},
	{
		ID:   4,
		Name: "Biology",
		Keywords: []string{
			"gene", "cell", "evolution", "bioinformatics", "protein",
			"DNA", "RNA", "genome", "species", "organism", "molecular",
			"ecology", "genetics", "microbiology", "neuroscience",
		},
		Description: "Genetics, cellular biology, evolution, bioinformatics",
	},
	{
		ID:   5,
		Name: "Materials Science",
		Keywords: []string{
			"nanomaterial", "crystal", "alloy", "polymer", "semiconductor",
			"ceramic", "composite", "thin film", "surface", "nanoparticle",
			"graphene", "superconductor", "biomaterial",
		},
		Description: "Nanomaterials, crystals, alloys, material properties",
	},
	{
		ID:   6,
		Name: "Physics",
		Keywords: []string{
			"quantum", "particle", "thermodynamics", "mechanics", "optics",
			"electromagnetic", "relativity", "condensed matter", "nuclear",
			"astrophysics", "photon", "wave", "energy",
		},
		Description: "Quantum mechanics, particle physics, thermodynamics",
	},
	{
		ID:   7,
		Name: "Geology",
		Keywords: []string{
			"rock", "mineral", "tectonic", "sediment", "volcanic",
			"earthquake", "geochemistry", "stratigraphy", "paleontology",
			"hydrology", "geophysics", "geological",
		},
		Description: "Rocks, minerals, tectonics, geological processes",
	},
	{
		ID:   8,
		Name: "Psychology",
		Keywords: []string{
			"behavior", "cognitive", "psychological", "mental", "emotion",
			"perception", "memory", "personality", "therapy", "disorder",
			"consciousness", "developmental", "social psychology",
		},
		Description: "Behavior, cognition, mental processes, psychological research",
	},
	{
		ID:   9,
		Name: "Art",
		Keywords: []string{
			"visual art", "music", "aesthetic", "artistic", "painting",
			"sculpture", "performance", "design", "creative", "museum",
			"cultural heritage", "art history",
		},
		Description: "Visual arts, music, aesthetics, artistic expression",
	},
	{
		ID:   10,
		Name: "History",
		Keywords: []string{
			"historical", "era", "civilization", "ancient", "medieval",
			"modern history", "archaeology", "archive", "heritage",
			"historiography", "historical event", "dynasty",
		},
		Description: "Historical events, eras, civilizations, historiography",
	},
	{
		ID:   11,
		Name: "Geography",
		Keywords: []string{
			"spatial", "regional", "climate", "landscape", "urban",
			"GIS", "cartography", "territory", "migration", "population",
			"geospatial", "environmental geography",
		},
		Description: "Spatial analysis, regional studies, climate, landscapes",
	},
	{
		ID:   12,
		Name: "Sociology",
		Keywords: []string{
			"social", "culture", "institution", "community", "inequality",
			"class", "gender", "race", "ethnicity", "social structure",
			"sociological", "social change", "social behavior",
		},
		Description: "Social structures, culture, institutions, social behavior",
	},
	{
		ID:   13,
		Name: "Business",
		Keywords: []string{
			"management", "marketing", "finance", "entrepreneurship",
			"strategy", "organization", "corporate", "MBA", "leadership",
			"innovation", "business model", "supply chain",
		},
		Description: "Management, marketing, finance, business strategy",
	},
	{
		ID:   14,
		Name: "Political Science",
		Keywords: []string{
			"government", "policy", "political", "democracy", "election",
			"parliament", "legislation", "diplomacy", "international relations",
			"political party", "voting", "governance",
		},
		Description: "Government, policy, political systems, international relations",
	},
	{
		ID:   15,
		Name: "Economics",
		Keywords: []string{
			"market", "equilibrium", "financial", "monetary", "fiscal",
			"trade", "GDP", "inflation", "microeconomics", "macroeconomics",
			"econometric", "price", "demand", "supply",
		},
		Description: "Markets, economic theory, financial systems, trade",
	},
	{
		ID:   16,
		Name: "Philosophy",
		Keywords: []string{
			"ethics", "logic", "metaphysics", "epistemology", "ontology",
			"moral", "philosophical", "reasoning", "existential",
			"phenomenology", "aesthetics philosophy", "mind",
		},
		Description: "Ethics, logic, metaphysics, epistemology, philosophical reasoning",
	},
	{
		ID:   17,
		Name: "Mathematics",
		Keywords: []string{
			"theorem", "proof", "equation", "algebra", "calculus",
			"topology", "number theory", "statistics", "probability",
			"differential", "integral", "mathematical",
		},
		Description: "Theorems, proofs, equations, mathematical analysis",
	},
	{
		ID:   18,
		Name: "Engineering",
		Keywords: []string{
			"design", "system", "optimization", "mechanical", "electrical",
			"civil", "structural", "control", "robotics", "manufacturing",
			"engineering", "prototype", "simulation",
		},
		Description: "Engineering design, systems, optimization, technical implementation",
	},
	{
		ID:   19,
		Name: "Environmental Science",
		Keywords: []string{
			"ecology", "pollution", "climate change", "sustainability",
			"biodiversity", "conservation", "ecosystem", "carbon",
			"environmental impact", "renewable", "green",
		},
		Description: "Ecology, pollution, climate change, sustainability",
	},
	{
		ID:   20,
		Name: "Agricultural and Food Sciences",
		Keywords: []string{
			"crop", "food technology", "agriculture", "livestock", "soil",
			"irrigation", "harvest", "nutrition", "food safety",
			"agronomy", "horticulture", "aquaculture",
		},
		Description: "Crops, food technology, agriculture, nutrition",
	},
	{
		ID:   21,
		Name: "Education",
		Keywords: []string{
			"pedagogy", "curriculum", "learning", "teaching", "student",
			"classroom", "educational", "assessment", "literacy",
			"higher education", "school", "instruction",
		},
		Description: "Pedagogy, curriculum, learning, teaching methods",
	},
	{
		ID:   22,
		Name: "Law",
		Keywords: []string{
			"legal", "regulation", "case", "court", "statute",
			"contract", "liability", "criminal", "constitutional",
			"jurisdiction", "litigation", "judicial",
		},
		Description: "Legal systems, regulations, case law, jurisprudence",
	},
	{
		ID:   23,
		Name: "Linguistics",
		Keywords: []string{
			"language", "syntax", "semantics", "phonology", "morphology",
			"discourse", "linguistic", "grammar", "translation",
			"sociolinguistics", "pragmatics", "corpus",
		},
		Description: "Language, syntax, semantics, linguistic analysis",
	},
}
