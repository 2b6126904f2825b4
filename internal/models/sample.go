package models

// SampleResponse returns a canned digest used by the dashboard's sample-data
// mode, so the UI can be demonstrated without calling the agent platform.
func SampleResponse() *ManagerResponse {
	return &ManagerResponse{
		Mode:             ModePreviewOnly,
		TopicsSearched:   3,
		TotalPapersFound: 6,
		TopicsResults: []TopicResult{
			{
				Topic:       "Large Language Models",
				PapersFound: 3,
				Papers: []Paper{
					{
						Title:      "Scaling Laws for Neural Language Models Revisited",
						Authors:    "Jane Smith, John Doe, Alice Chen",
						Abstract:   "We revisit scaling laws for large language models by examining how model performance changes with increased compute, data, and parameter count across different training regimes. Our findings suggest that previous scaling predictions underestimate the efficiency gains from architectural improvements.",
						KeyInsight: "Architectural improvements can shift scaling curves by 2-3x, meaning smaller models can match the performance of models 3x their size.",
						ArxivLink:  "https://arxiv.org/abs/2401.00001",
						Categories: "cs.CL, cs.AI, cs.LG",
					},
					{
						Title:      "Context Window Extension via Sparse Attention Patterns",
						Authors:    "Robert Lee, Maria Garcia",
						Abstract:   "We propose a novel sparse attention mechanism that allows transformer models to process context windows of up to 1 million tokens while maintaining sub-quadratic computational complexity. Our approach combines local and global attention patterns with learned routing.",
						KeyInsight: "A hybrid sparse-dense attention pattern enables 1M token contexts with only 4x the compute of a 128K context model.",
						ArxivLink:  "https://arxiv.org/abs/2401.00002",
						Categories: "cs.CL, cs.AI",
					},
					{
						Title:      "Instruction Tuning with Synthetic Data: Quality over Quantity",
						Authors:    "Wei Zhang, Sarah Johnson, Michael Brown",
						Abstract:   "We demonstrate that carefully curated synthetic instruction data can outperform large-scale human-annotated datasets for instruction tuning. Our pipeline uses a combination of self-play and automated quality filtering to produce high-quality training examples.",
						KeyInsight: "Only 10K high-quality synthetic instructions can match the performance of 100K human-annotated examples.",
						ArxivLink:  "https://arxiv.org/abs/2401.00003",
						Categories: "cs.CL, cs.LG",
					},
				},
			},
			{
				Topic:       "Reinforcement Learning",
				PapersFound: 2,
				Papers: []Paper{
					{
						Title:      "Model-Based RL with World Models for Robotic Manipulation",
						Authors:    "David Kim, Yuki Tanaka",
						Abstract:   "We introduce a world model architecture specifically designed for robotic manipulation tasks. Our approach learns a latent dynamics model from raw sensory observations, enabling sample-efficient learning of complex manipulation policies.",
						KeyInsight: "World models reduce the required real-world interactions by 50x compared to model-free approaches in manipulation tasks.",
						ArxivLink:  "https://arxiv.org/abs/2401.00004",
						Categories: "cs.RO, cs.AI, cs.LG",
					},
					{
						Title:      "Offline RL with Conservative Q-Learning: New Theoretical Bounds",
						Authors:    "Emily Park, James Wilson",
						Abstract:   "We provide tighter theoretical bounds for conservative Q-learning in the offline reinforcement learning setting. Our analysis reveals that the pessimism penalty can be significantly reduced while maintaining safety guarantees.",
						KeyInsight: "New bounds suggest CQL can be 30% less conservative while maintaining the same safety guarantees, improving policy quality.",
						ArxivLink:  "https://arxiv.org/abs/2401.00005",
						Categories: "cs.LG, cs.AI, stat.ML",
					},
				},
			},
			{
				Topic:       "Quantum Computing",
				PapersFound: 1,
				Papers: []Paper{
					{
						Title:      "Error Correction Codes for Near-Term Quantum Processors",
						Authors:    "Priya Patel, Thomas Anderson",
						Abstract:   "We develop a family of quantum error correction codes optimized for the noise characteristics of near-term superconducting quantum processors. Our codes achieve a 10x reduction in logical error rates compared to the surface code at the same physical qubit count.",
						KeyInsight: "Tailoring error correction to specific hardware noise profiles yields dramatic improvements in logical qubit fidelity.",
						ArxivLink:  "https://arxiv.org/abs/2401.00006",
						Categories: "quant-ph, cs.IT",
					},
				},
			},
		},
		EmailSent:   false,
		EmailStatus: "not_requested",
		DigestDate:  "2025-01-20",
	}
}
