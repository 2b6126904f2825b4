package models

// TopicSuggestionGroup is one field of study with its curated topics, used by
// the topic browser and the onboarding wizard.
type TopicSuggestionGroup struct {
	Category string   `json:"category"`
	Topics   []string `json:"topics"`
}

// SuggestedTopics returns the curated topic catalog in display order.
func SuggestedTopics() []TopicSuggestionGroup {
	return []TopicSuggestionGroup{
		{
			Category: "Computer Science",
			Topics: []string{
				"Large Language Models", "Computer Vision", "Reinforcement Learning",
				"Natural Language Processing", "Graph Neural Networks", "Federated Learning",
				"Transformer Architecture", "Neural Architecture Search", "Few-Shot Learning",
				"Generative Adversarial Networks",
			},
		},
		{
			Category: "Physics",
			Topics: []string{
				"Quantum Computing", "Dark Matter", "Gravitational Waves",
				"Topological Insulators", "Quantum Entanglement",
			},
		},
		{
			Category: "Mathematics",
			Topics: []string{
				"Algebraic Geometry", "Number Theory", "Differential Equations",
				"Topology", "Category Theory",
			},
		},
		{
			Category: "Biology",
			Topics: []string{
				"Protein Folding", "CRISPR Gene Editing", "Single-Cell Sequencing",
				"Synthetic Biology", "Computational Genomics",
			},
		},
		{
			Category: "AI Safety & Alignment",
			Topics: []string{
				"AI Alignment", "Reinforcement Learning from Human Feedback",
				"Constitutional AI", "Mechanistic Interpretability", "Red Teaming LLMs",
			},
		},
	}
}
