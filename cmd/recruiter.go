package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spigell/hiring-portal/internal/access"
	"github.com/spigell/hiring-portal/internal/hiring"
	"github.com/spigell/hiring-portal/internal/presenter"
	"github.com/spigell/hiring-portal/internal/upload"
	"github.com/spigell/hiring-portal/internal/workflow"
)

const inlineDescriptionName = "job-description.txt"

var recruiterCmd = &cobra.Command{
	Use:   "recruiter",
	Short: "Post jobs, rank candidates and check job descriptions for bias",
}

var recruiterBulkCmd = &cobra.Command{
	Use:   "bulk",
	Short: "Rank many resumes against a job description",
	RunE:  run(bulk),
}

var recruiterRankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank resumes for a posted job",
	RunE:  run(rank),
}

var recruiterBiasCmd = &cobra.Command{
	Use:   "bias",
	Short: "Check a job description against a sample resume for bias",
	RunE:  run(bias),
}

var recruiterAnalyzeJDCmd = &cobra.Command{
	Use:   "analyze-jd",
	Short: "Summarize a job description document",
	RunE:  run(analyzeJD),
}

var recruiterJobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Manage posted jobs",
}

var recruiterJobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List posted jobs",
	RunE: run(func(cmd *cobra.Command, _ []string, env *environment) error {
		if _, err := env.enter(access.RecruiterArea); err != nil {
			return err
		}

		jobs, err := env.client.ListJobs(cmd.Context())
		if err != nil {
			return err
		}
		return env.print(cmd.OutOrStdout(), jobs, func() string { return presenter.RenderJobs(jobs) })
	}),
}

var recruiterJobsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Post a new job",
	RunE:  run(createJob),
}

var recruiterJobsCandidatesCmd = &cobra.Command{
	Use:   "candidates <job-id>",
	Short: "List candidates matched against a posted job",
	Args:  cobra.ExactArgs(1),
	RunE: run(func(cmd *cobra.Command, args []string, env *environment) error {
		if _, err := env.enter(access.RecruiterArea); err != nil {
			return err
		}

		candidates, err := env.client.JobCandidates(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return env.print(cmd.OutOrStdout(), candidates, func() string { return presenter.RenderJobCandidates(candidates) })
	}),
}

var recruiterAnalyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Show hiring analytics",
	RunE: run(func(cmd *cobra.Command, _ []string, env *environment) error {
		if _, err := env.enter(access.RecruiterArea); err != nil {
			return err
		}

		analytics, err := env.client.Analytics(cmd.Context())
		if err != nil {
			return err
		}
		return env.print(cmd.OutOrStdout(), analytics, func() string { return presenter.RenderAnalytics(analytics) })
	}),
}

func init() {
	recruiterBulkCmd.Flags().String("jd", "", "job description file")
	recruiterBulkCmd.Flags().String("jd-text", "", "job description text")
	recruiterBulkCmd.Flags().StringSliceP("resume", "r", nil, "resume files, repeat or separate by commas")

	recruiterRankCmd.Flags().String("job", "", "id of the posted job (asked interactively when omitted)")
	recruiterRankCmd.Flags().String("jd-text", "", "override the description of the posted job")
	recruiterRankCmd.Flags().StringSliceP("resume", "r", nil, "resume files, repeat or separate by commas")

	recruiterBiasCmd.Flags().String("jd", "", "job description file")
	recruiterBiasCmd.Flags().String("jd-text", "", "job description text")
	recruiterBiasCmd.Flags().StringP("resume", "r", "", "sample resume file")

	recruiterAnalyzeJDCmd.Flags().String("jd", "", "job description file")

	flags := recruiterJobsCreateCmd.Flags()
	flags.String("title", "", "job title")
	flags.String("description", "", "job description")
	flags.StringSlice("skill", nil, "required skills, repeat or separate by commas")
	flags.String("experience-level", "", "expected experience level")
	flags.String("salary-range", "", "salary range")
	flags.String("location", "", "location")

	recruiterJobsCmd.AddCommand(recruiterJobsListCmd, recruiterJobsCreateCmd, recruiterJobsCandidatesCmd)
	recruiterCmd.AddCommand(recruiterBulkCmd, recruiterRankCmd, recruiterBiasCmd, recruiterAnalyzeJDCmd, recruiterJobsCmd, recruiterAnalyticsCmd)
	rootCmd.AddCommand(recruiterCmd)
}

// description resolves the --jd and --jd-text pair into one file. Text wins.
func description(cmd *cobra.Command) (upload.File, error) {
	text, _ := cmd.Flags().GetString("jd-text")
	if strings.TrimSpace(text) != "" {
		return upload.FromText(inlineDescriptionName, text), nil
	}

	path, _ := cmd.Flags().GetString("jd")
	return loadOptional(path)
}

func resumes(cmd *cobra.Command) ([]upload.File, error) {
	paths, _ := cmd.Flags().GetStringSlice("resume")
	return upload.LoadAll(cmd.Context(), trimmed(paths))
}

func submitBatch(cmd *cobra.Command, env *environment, req workflow.BatchRequest) error {
	batch := workflow.NewBatch(env.client, env.deps())
	result, err := batch.Submit(cmd.Context(), req)
	if err != nil {
		return err
	}

	view := presenter.Batch(result)
	return env.print(cmd.OutOrStdout(), view, func() string { return presenter.RenderBatch(view) })
}

func bulk(cmd *cobra.Command, _ []string, env *environment) error {
	if _, err := env.enter(access.RecruiterArea); err != nil {
		return err
	}

	jd, err := description(cmd)
	if err != nil {
		return err
	}
	files, err := resumes(cmd)
	if err != nil {
		return err
	}

	return submitBatch(cmd, env, workflow.BatchRequest{
		Variant:         workflow.VariantBulk,
		DescriptionFile: jd,
		Resumes:         files,
	})
}

func rank(cmd *cobra.Command, _ []string, env *environment) error {
	caps, err := env.enter(access.RecruiterArea)
	if err != nil {
		return err
	}

	files, err := resumes(cmd)
	if err != nil {
		return err
	}

	jobID, _ := cmd.Flags().GetString("job")
	text, _ := cmd.Flags().GetString("jd-text")

	req := workflow.BatchRequest{
		Variant:        workflow.VariantJobScoped,
		JobDescription: text,
		Resumes:        files,
	}

	// Only a submitting session can read the posted jobs; others are
	// rejected by the coordinator before any request.
	if caps.Submit {
		job, err := postedJob(cmd, env, jobID)
		if err != nil {
			return err
		}
		if job != nil {
			req.JobID = job.ID
			if strings.TrimSpace(req.JobDescription) == "" {
				req.JobDescription = job.Description
			}
		}
	}

	return submitBatch(cmd, env, req)
}

func postedJob(cmd *cobra.Command, env *environment, id string) (*hiring.JobPosting, error) {
	if strings.TrimSpace(id) != "" {
		return env.client.GetJob(cmd.Context(), id)
	}

	jobs, err := env.client.ListJobs(cmd.Context())
	if err != nil {
		return nil, err
	}
	return selectJob(jobs)
}

func bias(cmd *cobra.Command, _ []string, env *environment) error {
	if _, err := env.enter(access.RecruiterArea); err != nil {
		return err
	}

	jd, err := description(cmd)
	if err != nil {
		return err
	}
	path, _ := cmd.Flags().GetString("resume")
	resume, err := loadOptional(path)
	if err != nil {
		return err
	}

	checker := workflow.NewBias(env.client, env.deps(), env.progress())
	result, err := checker.Submit(cmd.Context(), workflow.BiasRequest{
		JobDescription: jd,
		Resume:         resume,
		OnProgress:     env.progressPrinter(cmd.ErrOrStderr()),
	})
	if err != nil {
		return err
	}

	view := presenter.Bias(result)
	return env.print(cmd.OutOrStdout(), view, func() string { return presenter.RenderBias(view) })
}

func analyzeJD(cmd *cobra.Command, _ []string, env *environment) error {
	caps, err := env.enter(access.RecruiterArea)
	if err != nil {
		return err
	}

	path, _ := cmd.Flags().GetString("jd")
	if strings.TrimSpace(path) == "" {
		return workflow.ErrMissingJobDescription
	}
	if err := env.requireSubmit(caps); err != nil {
		return err
	}

	jd, err := upload.Load(path)
	if err != nil {
		return err
	}

	analysis, err := env.client.AnalyzeJD(cmd.Context(), jd)
	if err != nil {
		return err
	}

	return env.print(cmd.OutOrStdout(), analysis, func() string { return presenter.RenderJDAnalysis(analysis) })
}

func createJob(cmd *cobra.Command, _ []string, env *environment) error {
	caps, err := env.enter(access.RecruiterArea)
	if err != nil {
		return err
	}
	if err := env.requireSubmit(caps); err != nil {
		return err
	}

	flags := cmd.Flags()
	title, _ := flags.GetString("title")
	desc, _ := flags.GetString("description")
	skills, _ := flags.GetStringSlice("skill")
	level, _ := flags.GetString("experience-level")
	salary, _ := flags.GetString("salary-range")
	location, _ := flags.GetString("location")

	job, err := env.client.CreateJob(cmd.Context(), hiring.CreateJobRequest{
		Title:           strings.TrimSpace(title),
		Description:     strings.TrimSpace(desc),
		RequiredSkills:  trimmed(skills),
		ExperienceLevel: level,
		SalaryRange:     salary,
		Location:        location,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "posted job %s\n", job.ID)
	return env.print(cmd.OutOrStdout(), job, func() string { return presenter.JobLine(*job) })
}
