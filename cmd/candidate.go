package cmd

import (
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/spigell/hiring-portal/internal/access"
	"github.com/spigell/hiring-portal/internal/catalog"
	"github.com/spigell/hiring-portal/internal/hiring"
	"github.com/spigell/hiring-portal/internal/presenter"
	"github.com/spigell/hiring-portal/internal/upload"
	"github.com/spigell/hiring-portal/internal/workflow"
)

var candidateCmd = &cobra.Command{
	Use:   "candidate",
	Short: "Browse jobs and match your resume against them",
}

var candidateJobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List the open positions",
	RunE: run(func(cmd *cobra.Command, _ []string, env *environment) error {
		if _, err := env.enter(access.CandidateArea); err != nil {
			return err
		}

		jobs := catalog.Jobs()
		return env.print(cmd.OutOrStdout(), jobs, func() string { return presenter.RenderJobs(jobs) })
	}),
}

var candidateMatchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match a resume against a job",
	RunE:  run(match),
}

var candidateAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Extract skills and verify projects of a resume without a job",
	RunE:  run(analyzeResume),
}

func init() {
	candidateMatchCmd.Flags().String("job", "", "id of the job to match against (asked interactively when omitted)")
	candidateMatchCmd.Flags().StringP("resume", "r", "", "resume file (pdf, docx or txt)")
	candidateAnalyzeCmd.Flags().StringP("resume", "r", "", "resume file (pdf, docx or txt)")

	candidateCmd.AddCommand(candidateJobsCmd, candidateMatchCmd, candidateAnalyzeCmd)
	rootCmd.AddCommand(candidateCmd)
}

// loadOptional reads path when given. An empty path yields the zero File so
// the coordinator reports the missing input itself.
func loadOptional(path string) (upload.File, error) {
	if strings.TrimSpace(path) == "" {
		return upload.File{}, nil
	}
	return upload.Load(path)
}

// selectJob asks the user to pick one of jobs.
func selectJob(jobs []hiring.JobPosting) (*hiring.JobPosting, error) {
	if len(jobs) == 0 {
		return nil, nil
	}

	items := make([]string, 0, len(jobs))
	for _, j := range jobs {
		items = append(items, presenter.JobLine(j))
	}

	jobPrompt := promptui.Select{
		Label: "Choose a job and press ENTER",
		Items: items,
	}
	idx, _, err := jobPrompt.Run()
	if err != nil {
		return nil, err
	}

	return &jobs[idx], nil
}

func match(cmd *cobra.Command, _ []string, env *environment) error {
	if _, err := env.enter(access.CandidateArea); err != nil {
		return err
	}

	flags := cmd.Flags()
	resumePath, _ := flags.GetString("resume")
	jobID, _ := flags.GetString("job")

	resume, err := loadOptional(resumePath)
	if err != nil {
		return err
	}

	// Selection is skipped without a resume so the missing file is reported first.
	var job *hiring.JobPosting
	switch {
	case strings.TrimSpace(jobID) != "":
		if job, err = catalog.FindByID(jobID); err != nil {
			return err
		}
	case !resume.IsZero():
		if job, err = selectJob(catalog.Jobs()); err != nil {
			return err
		}
	}

	analysis := workflow.NewAnalysis(env.client, env.deps(), env.progress())
	result, err := analysis.Submit(cmd.Context(), workflow.MatchRequest{
		Resume:     resume,
		Job:        job,
		OnProgress: env.progressPrinter(cmd.ErrOrStderr()),
	})
	if err != nil {
		return err
	}

	view := presenter.Match(result)
	return env.print(cmd.OutOrStdout(), view, func() string { return presenter.RenderMatch(view) })
}

func analyzeResume(cmd *cobra.Command, _ []string, env *environment) error {
	caps, err := env.enter(access.CandidateArea)
	if err != nil {
		return err
	}

	path, _ := cmd.Flags().GetString("resume")
	if strings.TrimSpace(path) == "" {
		return workflow.ErrMissingFile
	}
	if err := env.requireSubmit(caps); err != nil {
		return err
	}

	resume, err := upload.Load(path)
	if err != nil {
		return err
	}

	analysis, err := env.client.AnalyzeResume(cmd.Context(), resume)
	if err != nil {
		return err
	}

	return env.print(cmd.OutOrStdout(), analysis, func() string { return presenter.RenderResumeAnalysis(analysis) })
}
