package library

import (
	"github.com/kingrea/promptforge/internal/briefing"
	"github.com/kingrea/promptforge/internal/persona"
	"github.com/kingrea/promptforge/internal/prompt"
	"github.com/kingrea/promptforge/internal/reasoning"
)

const builtinVersion = "1.0.0"

// MedicalResearchContext returns the stock context for drug-development
// analysis prompts.
func MedicalResearchContext() *briefing.Context {
	return briefing.NewContext().
		WithBackground("The company is developing an innovative drug with proven efficacy in phase III clinical trials.").
		WithDomain("Pharmaceutical research").
		AddResource("OMOP CDM data").
		AddResource("Phase III clinical trial results").
		AddStakeholder("Medical Affairs department").
		AddStakeholder("Data Science team").
		AddStakeholder("Clinical researchers")
}

// DataAnalysisContext returns the stock context for healthcare-data prompts.
func DataAnalysisContext() *briefing.Context {
	return briefing.NewContext().
		WithBackground("Analysis of large-scale healthcare data to identify patterns and insights.").
		WithDomain("Healthcare data analytics").
		AddResource("OMOP Common Data Model").
		AddResource("Electronic Health Records").
		AddResource("Claims data").
		AddConstraint("Data privacy regulations (HIPAA/GDPR)").
		AddConstraint("Limited access to patient-level data")
}

// DomainExpertBranch returns the stock branch identifying the domain
// problems an analysis must address.
func DomainExpertBranch() *reasoning.Branch {
	return reasoning.NewBranch("Domain Expert Analysis").
		WithDescription("Identifying the most important domain-specific problems that need to be addressed.").
		WithOwner("Medical domain expert").
		WithPriority(5).
		AddTag("domain expertise").
		AddTag("medical").
		AddThought(reasoning.NewAnalysis("The most important questions regarding the epidemiology of the disease", "1.1")).
		AddThought(reasoning.NewAnalysis("Questions regarding problems with the current approach to treatment", "1.2")).
		AddThought(reasoning.NewAnalysis("Medical unmet needs requiring attention and research", "1.3"))
}

// EpidemiologistBranch returns the stock branch translating domain questions
// into epidemiological ones.
func EpidemiologistBranch() *reasoning.Branch {
	return reasoning.NewBranch("Epidemiological Analysis").
		WithDescription("Modifying domain expert questions and forming scientific and epidemiological questions for OMOP data.").
		WithOwner("Epidemiologist").
		WithPriority(4).
		AddTag("epidemiology").
		AddTag("methodology").
		AddThought(reasoning.NewMethodology("Forming important epidemiological questions based on the current state of affairs from the literature review", "2.1")).
		AddThought(reasoning.NewAnalysis("Translating domain expert questions into epidemiological questions", "2.2")).
		AddThought(reasoning.NewMethodology("Forming requirements for analysis", "2.3"))
}

// DeveloperBranch returns the stock branch detailing the technical method.
func DeveloperBranch() *reasoning.Branch {
	return reasoning.NewBranch("Technical Implementation").
		WithDescription("Forming a detailed method for performing analysis.").
		WithOwner("Developer").
		WithPriority(3).
		AddTag("technical").
		AddTag("implementation").
		AddTag("methodology").
		AddThought(reasoning.NewRecommendation("The most suitable tools for analysis", "3.1")).
		AddThought(reasoning.NewMethodology("Programmatic approaches for analysis", "3.2")).
		AddThought(reasoning.NewMethodology("Forming the structure of analysis", "3.3"))
}

// DirectorBranch returns the stock coordination branch.
func DirectorBranch() *reasoning.Branch {
	return reasoning.NewBranch("Strategic Coordination").
		WithDescription("Director performs a coordinating function and asks leading questions.").
		WithOwner("Senior Director").
		WithPriority(5).
		AddTag("coordination").
		AddTag("strategy").
		AddTag("oversight").
		AddThought(&reasoning.Thought{Content: "To the domain expert for focusing", Type: reasoning.ThoughtQuestion, Order: "4.1"}).
		AddThought(reasoning.NewAnalysis("Prioritizes the epidemiologist's questions", "4.2")).
		AddThought(reasoning.NewRecommendation("Infrastructure assistance to the developer", "4.3"))
}

// RegisterBuiltins installs the stock templates.
func RegisterBuiltins(reg *Registry) {
	if reg == nil {
		return
	}
	reg.MustRegister(Template{
		Info: Info{
			ID:          "medical-research",
			Name:        "Medical Research Briefing",
			Description: "Drug-development context with clinical and epidemiological questions.",
			Version:     builtinVersion,
		},
		Build: buildMedicalResearch,
	})
	reg.MustRegister(Template{
		Info: Info{
			ID:          "data-analysis",
			Name:        "Healthcare Data Analysis",
			Description: "OMOP-centric analysis briefing with privacy constraints.",
			Version:     builtinVersion,
		},
		Build: buildDataAnalysis,
	})
	reg.MustRegister(Template{
		Info: Info{
			ID:          "analytical-board",
			Name:        "Analytical Board",
			Description: "Four-branch board review: domain expert, epidemiologist, developer, director.",
			Version:     builtinVersion,
		},
		Build: buildAnalyticalBoard,
	})
}

func buildMedicalResearch(params Params) (*prompt.Builder, error) {
	title := params.String("title", "Medical Research Analysis")
	b := prompt.NewBuilder(title).
		AddRole(persona.NewRole("Medical domain expert").
			WithExpertise("Disease area and treatment landscape").
			AddResponsibility("Identify unmet medical needs").
			AddFocusArea("Current standard of care")).
		WithContext(MedicalResearchContext().
			AddExtraList("Industry Grounding", DrugDevelopmentOverview(), RegulatoryBasics())).
		AddQuestion(briefing.NewEpidemiologicalQuestion("What is the burden of disease in the target population?")).
		AddQuestion(briefing.NewClinicalQuestion("Where does the current standard of care fall short?")).
		AddRequirement(briefing.NewComplianceRequirement("Ground every claim in cited evidence")).
		WithOutputFormat("Structured Markdown report with a prioritized findings section.")
	return b, nil
}

func buildDataAnalysis(params Params) (*prompt.Builder, error) {
	title := params.String("title", "Healthcare Data Analysis")
	b := prompt.NewBuilder(title).
		AddRoleToDepartment(persona.NewRole("Data Scientist").
			WithExpertise("Observational health data").
			AddFocusArea("Cohort definitions"), "Data Science").
		AddRoleToDepartment(persona.NewRole("Epidemiologist").
			WithExpertise("Study design"), "Data Science").
		WithContext(DataAnalysisContext()).
		AddQuestion(briefing.NewTechnicalQuestion("Which OMOP tables and concept sets are required?")).
		AddRequirement(briefing.NewAnalyticalRequirement("State methodology before results")).
		AddRequirement(briefing.NewPresentationRequirement("Summarize limitations in a dedicated section")).
		WithApproach("Define cohorts first, then exposures and outcomes, then analysis plan.")
	return b, nil
}

func buildAnalyticalBoard(params Params) (*prompt.Builder, error) {
	title := params.String("title", "Analytical Board Review")
	b := prompt.NewBuilder(title).
		AddDepartment(persona.NewDepartment("Analytical Board").
			WithMission("Run a multi-perspective review of the analysis plan").
			AddRole(persona.NewRole("Medical domain expert")).
			AddRole(persona.NewRole("Epidemiologist")).
			AddRole(persona.NewRole("Developer")).
			AddRole(persona.NewRole("Senior Director"))).
		WithContext(MedicalResearchContext().
			AddExtraList("Industry Grounding", GxPContext(), StakeholderOverview())).
		AddBranch(DomainExpertBranch()).
		AddBranch(EpidemiologistBranch()).
		AddBranch(DeveloperBranch()).
		AddBranch(DirectorBranch()).
		WithApproach("Each branch owner works their thoughts in order; the director reconciles conflicts and sets priorities.").
		WithOutputFormat("One section per branch, then a consolidated recommendation.")
	return b, nil
}
