package paper

import dompaper "github.com/kailas-cloud/papersapi/internal/domain/paper"

func strPtr(s string) *string { return &s }

// seed returns the built-in public-health research dataset, ordered by id.
func seed() []dompaper.Paper {
	return []dompaper.Paper{
		{
			ID:    1,
			Title: "Global COVID-19 Surveillance and Response Strategies: A Comprehensive Analysis",
			Abstract: "This comprehensive study examines the global response to COVID-19, analyzing surveillance systems, " +
				"public health interventions, and their effectiveness across different regions. Our analysis covers data " +
				"from 195 countries and territories, evaluating the impact of various containment measures on " +
				"transmission rates and healthcare system capacity.",
			Author:          "Dr. Sarah Johnson",
			CoAuthors:       []string{"Dr. Michael Chen", "Dr. Elena Rodriguez", "Dr. James Wilson"},
			Institution:     "Harvard T.H. Chan School of Public Health",
			SubmissionDate:  "2023-03-15",
			PublicationDate: strPtr("2023-05-20"),
			Status:          dompaper.Published,
			DOI:             strPtr("10.1016/j.epidem.2023.100652"),
			Keywords:        []string{"COVID-19", "surveillance", "global health", "pandemic response", "public health policy"},
			Category:        "Infectious Disease",
			ResearchType:    "observational",
			Citations:       89,
			FundingSource:   "NIH Grant R01AI123456",
			PeerReviewers:   []string{"Dr. Amanda Foster", "Dr. Robert Kim"},
			Journal:         "Epidemics",
			VolumeIssue:     "Vol 43, Article 100652",
		},
		{
			ID:    2,
			Title: "Machine Learning Approaches for Early Detection of Disease Outbreaks in Sub-Saharan Africa",
			Abstract: "We present novel machine learning algorithms for early detection of infectious disease outbreaks " +
				"using mobile phone data, social media sentiment analysis, and traditional epidemiological indicators. " +
				"Our model achieved 94% accuracy in predicting outbreaks 2-3 weeks before traditional surveillance systems.",
			Author:          "Dr. Kwame Asante",
			CoAuthors:       []string{"Dr. Lisa Thompson", "Dr. Ahmed Hassan", "Dr. Grace Okafor"},
			Institution:     "Makerere University College of Health Sciences",
			SubmissionDate:  "2023-08-22",
			PublicationDate: strPtr("2023-11-10"),
			Status:          dompaper.Published,
			DOI:             strPtr("10.1371/journal.pone.0289456"),
			Keywords:        []string{"machine learning", "disease surveillance", "early warning", "Sub-Saharan Africa", "mobile health"},
			Category:        "Digital Health",
			ResearchType:    "modeling",
			Citations:       34,
			FundingSource:   "Bill & Melinda Gates Foundation",
			PeerReviewers:   []string{"Dr. Catherine Williams", "Dr. Samuel Lee"},
			Journal:         "PLOS ONE",
			VolumeIssue:     "Vol 18, No 11",
		},
		{
			ID:    3,
			Title: "Vector Control Strategies for Malaria Prevention: A Meta-Analysis of Randomized Controlled Trials",
			Abstract: "A systematic review and meta-analysis of 47 randomized controlled trials examining the effectiveness " +
				"of various vector control interventions for malaria prevention. We analyzed data from 156,789 " +
				"participants across 23 countries to determine the most effective combinations of interventions.",
			Author:          "Dr. Priya Sharma",
			CoAuthors:       []string{"Dr. David Martinez", "Dr. Fatima Al-Zahra", "Dr. John Anderson"},
			Institution:     "London School of Hygiene & Tropical Medicine",
			SubmissionDate:  "2023-06-30",
			PublicationDate: strPtr("2023-09-15"),
			Status:          dompaper.Published,
			DOI:             strPtr("10.1016/S0140-6736(23)01234-5"),
			Keywords:        []string{"malaria", "vector control", "prevention", "meta-analysis", "randomized controlled trials"},
			Category:        "Vector-borne Disease",
			ResearchType:    "meta-analysis",
			Citations:       67,
			FundingSource:   "WHO Research Grant",
			PeerReviewers:   []string{"Dr. Maria Santos", "Dr. Peter Chang"},
			Journal:         "The Lancet",
			VolumeIssue:     "Vol 402, Issue 10405",
		},
		{
			ID:    4,
			Title: "Climate Change Impacts on Vector-Borne Disease Distribution: Predictive Modeling for 2050",
			Abstract: "Using advanced climate models and vector ecology data, we project changes in the geographic " +
				"distribution of major vector-borne diseases by 2050. Our analysis indicates potential expansion of " +
				"dengue, Zika, and chikungunya transmission zones, with new areas of risk in temperate regions.",
			Author:         "Dr. Elena Volkov",
			CoAuthors:      []string{"Dr. Carlos Mendoza", "Dr. Yuki Tanaka", "Dr. Rachel Green"},
			Institution:    "Centers for Disease Control and Prevention",
			SubmissionDate: "2023-09-12",
			Status:         dompaper.UnderReview,
			Keywords:       []string{"climate change", "vector-borne diseases", "predictive modeling", "global warming", "disease distribution"},
			Category:       "Climate Health",
			ResearchType:   "modeling",
			Citations:      0,
			FundingSource:  "EPA Climate Health Grant",
			PeerReviewers:  []string{"Dr. Thomas Brown", "Dr. Sophie Laurent"},
			Journal:        "Nature Climate Change",
			VolumeIssue:    "Under Review",
		},
		{
			ID:    5,
			Title: "Antimicrobial Resistance Surveillance in Low-Resource Settings: Implementation Challenges and Solutions",
			Abstract: "This study evaluates the implementation of antimicrobial resistance (AMR) surveillance programs in " +
				"15 low-resource countries, identifying key barriers and proposing sustainable solutions. We present a " +
				"framework for cost-effective AMR monitoring that can be adapted to various healthcare systems.",
			Author:         "Dr. Benjamin Okonkwo",
			CoAuthors:      []string{"Dr. Melissa Wong", "Dr. Hassan Ibrahim", "Dr. Julia Kowalski"},
			Institution:    "World Health Organization",
			SubmissionDate: "2023-11-03",
			Status:         dompaper.UnderReview,
			Keywords:       []string{"antimicrobial resistance", "surveillance", "low-resource settings", "implementation science", "global health"},
			Category:       "Antimicrobial Resistance",
			ResearchType:   "survey",
			Citations:      0,
			FundingSource:  "WHO Core Budget",
			PeerReviewers:  []string{"Dr. Anna Petrov", "Dr. Mark Johnson"},
			Journal:        "The Lancet Global Health",
			VolumeIssue:    "Under Review",
		},
		{
			ID:    6,
			Title: "Digital Health Interventions for Tuberculosis Contact Tracing: A Systematic Review",
			Abstract: "Comprehensive review of digital health technologies used for tuberculosis contact tracing, " +
				"including mobile applications, GPS tracking, and blockchain-based systems. Analysis of 32 studies " +
				"reveals significant improvements in contact identification and follow-up rates.",
			Author:          "Dr. Raj Patel",
			CoAuthors:       []string{"Dr. Kim Nguyen", "Dr. Maria Gonzalez", "Dr. Paul Stewart"},
			Institution:     "Johns Hopkins Bloomberg School of Public Health",
			SubmissionDate:  "2023-04-18",
			PublicationDate: strPtr("2023-07-25"),
			Status:          dompaper.Published,
			DOI:             strPtr("10.1093/ije/dyad123"),
			Keywords:        []string{"tuberculosis", "contact tracing", "digital health", "mobile health", "systematic review"},
			Category:        "Digital Health",
			ResearchType:    "systematic review",
			Citations:       23,
			FundingSource:   "USAID TB Research Grant",
			PeerReviewers:   []string{"Dr. Jennifer Liu", "Dr. Francisco Silva"},
			Journal:         "International Journal of Epidemiology",
			VolumeIssue:     "Vol 52, Issue 4",
		},
		{
			ID:    7,
			Title: "Maternal and Child Health Outcomes in Post-Conflict Settings: Evidence from West Africa",
			Abstract: "Longitudinal study examining maternal and child health indicators in post-conflict West African " +
				"countries over a 10-year period. Analysis of health system reconstruction efforts and their impact on " +
				"reducing maternal mortality and improving child vaccination coverage.",
			Author:          "Dr. Aisha Diallo",
			CoAuthors:       []string{"Dr. Robert Taylor", "Dr. Ngozi Okwu", "Dr. Marie Dubois"},
			Institution:     "UNICEF West and Central Africa Regional Office",
			SubmissionDate:  "2023-07-14",
			PublicationDate: strPtr("2023-10-30"),
			Status:          dompaper.Published,
			DOI:             strPtr("10.1186/s12978-023-01678-9"),
			Keywords:        []string{"maternal health", "child health", "post-conflict", "West Africa", "health systems"},
			Category:        "Global Health",
			ResearchType:    "observational",
			Citations:       45,
			FundingSource:   "UNICEF Research Fund",
			PeerReviewers:   []string{"Dr. Helen Clark", "Dr. Joseph Kamara"},
			Journal:         "Reproductive Health",
			VolumeIssue:     "Vol 20, Article 168",
		},
		{
			ID:    8,
			Title: "Zoonotic Disease Spillover Risk Assessment Using One Health Surveillance Networks",
			Abstract: "Development and validation of a risk assessment framework for zoonotic disease spillover events " +
				"using integrated surveillance data from human, animal, and environmental health sectors. The framework " +
				"was tested in Southeast Asian countries with high biodiversity and human-animal interface activity.",
			Author:         "Dr. Kenji Yamamoto",
			CoAuthors:      []string{"Dr. Sarah Mitchell", "Dr. Luca Romano", "Dr. Indira Chandra"},
			Institution:    "FAO Emergency Centre for Transboundary Animal Diseases",
			SubmissionDate: "2023-12-08",
			Status:         dompaper.InPreparation,
			Keywords:       []string{"zoonotic diseases", "spillover", "One Health", "surveillance", "risk assessment"},
			Category:       "One Health",
			ResearchType:   "surveillance",
			Citations:      0,
			FundingSource:  "FAO Technical Cooperation Programme",
			PeerReviewers:  []string{},
			Journal:        "EcoHealth",
			VolumeIssue:    "In Preparation",
		},
	}
}
