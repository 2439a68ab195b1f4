package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/types"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the working resume",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Update personal details",
	Long:  "Update personal details. Only the flags given are changed; pass an empty value to clear a field.",
	Example: `  resume_builder set --first-name Jane --last-name Doe --email jane@example.com
  resume_builder set --title "Staff Engineer"`,
	Args: cobra.NoArgs,
	RunE: runSet,
}

var summaryCmd = &cobra.Command{
	Use:   "summary <text>",
	Short: "Replace the professional summary",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSummary,
}

var addExperienceCmd = &cobra.Command{
	Use:   "add-experience",
	Short: "Append a work history entry",
	Args:  cobra.NoArgs,
	RunE:  runAddExperience,
}

var addEducationCmd = &cobra.Command{
	Use:   "add-education",
	Short: "Append an education entry",
	Args:  cobra.NoArgs,
	RunE:  runAddEducation,
}

var addProjectCmd = &cobra.Command{
	Use:   "add-project",
	Short: "Append a project",
	Args:  cobra.NoArgs,
	RunE:  runAddProject,
}

var updateExperienceCmd = &cobra.Command{
	Use:     "update-experience <position>",
	Short:   "Change fields of a work history entry in place",
	Long:    "Change fields of a work history entry. Only the flags given are changed; the entry keeps its id and position.",
	Example: `  resume_builder update-experience 1 --position "Staff Engineer" --achievement "Led the storage rewrite"`,
	Args:    cobra.ExactArgs(1),
	RunE:    runUpdateExperience,
}

var updateEducationCmd = &cobra.Command{
	Use:   "update-education <position>",
	Short: "Change fields of an education entry in place",
	Args:  cobra.ExactArgs(1),
	RunE:  runUpdateEducation,
}

var updateProjectCmd = &cobra.Command{
	Use:   "update-project <position>",
	Short: "Change fields of a project in place",
	Args:  cobra.ExactArgs(1),
	RunE:  runUpdateProject,
}

var addSkillCmd = &cobra.Command{
	Use:   "add-skill <skill>...",
	Short: "Append skills, skipping ones already listed",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAddValues(editor.Skills),
}

var addCertificationCmd = &cobra.Command{
	Use:   "add-certification <name>...",
	Short: "Append certifications",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAddValues(editor.Certifications),
}

var addLanguageCmd = &cobra.Command{
	Use:   "add-language <language>...",
	Short: "Append spoken languages",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAddValues(editor.Languages),
}

var removeCmd = &cobra.Command{
	Use:     "remove <section> <position>",
	Short:   "Remove an entry from a list section",
	Long:    "Remove an entry from a list section. Positions start at 1, as printed by show.",
	Example: "  resume_builder remove experience 2",
	Args:    cobra.ExactArgs(2),
	RunE:    runRemove,
}

var moveCmd = &cobra.Command{
	Use:     "move <section> <from> <to>",
	Short:   "Reorder an entry within a list section",
	Long:    "Move the entry at <from> so that it ends up at <to>. Positions start at 1.",
	Example: "  resume_builder move skills 5 1",
	Args:    cobra.ExactArgs(3),
	RunE:    runMove,
}

var templateCmd = &cobra.Command{
	Use:   "template [id]",
	Short: "Show the available templates or select one",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTemplate,
}

// Flags for set
var (
	setFirstName string
	setLastName  string
	setEmail     string
	setPhone     string
	setAddress   string
	setLinkedIn  string
	setGitHub    string
	setWebsite   string
	setTitle     string
)

// Flags for add-experience and update-experience
var (
	expCompany      string
	expPosition     string
	expStart        string
	expEnd          string
	expCurrent      bool
	expDescription  string
	expAchievements []string
)

// Flags for add-education and update-education
var (
	eduInstitution string
	eduDegree      string
	eduField       string
	eduStart       string
	eduEnd         string
	eduGPA         string
)

// Flags for add-project and update-project
var (
	projName         string
	projDescription  string
	projTechnologies []string
	projLink         string
	projStart        string
	projEnd          string
)

func init() {
	setCmd.Flags().StringVar(&setFirstName, "first-name", "", "First name")
	setCmd.Flags().StringVar(&setLastName, "last-name", "", "Last name")
	setCmd.Flags().StringVar(&setEmail, "email", "", "Email address")
	setCmd.Flags().StringVar(&setPhone, "phone", "", "Phone number")
	setCmd.Flags().StringVar(&setAddress, "address", "", "City or address")
	setCmd.Flags().StringVar(&setLinkedIn, "linkedin", "", "LinkedIn profile URL")
	setCmd.Flags().StringVar(&setGitHub, "github", "", "GitHub profile URL")
	setCmd.Flags().StringVar(&setWebsite, "website", "", "Personal website URL")
	setCmd.Flags().StringVar(&setTitle, "title", "", "Professional title")

	for _, c := range []*cobra.Command{addExperienceCmd, updateExperienceCmd} {
		c.Flags().StringVar(&expCompany, "company", "", "Company name")
		c.Flags().StringVar(&expPosition, "position", "", "Job title")
		c.Flags().StringVar(&expStart, "start", "", "Start month (YYYY-MM)")
		c.Flags().StringVar(&expEnd, "end", "", "End month (YYYY-MM)")
		c.Flags().BoolVar(&expCurrent, "current", false, "Still in this position")
		c.Flags().StringVar(&expDescription, "description", "", "What the role involved")
		c.Flags().StringArrayVar(&expAchievements, "achievement", nil, "Achievement bullet (repeatable)")
	}

	for _, c := range []*cobra.Command{addEducationCmd, updateEducationCmd} {
		c.Flags().StringVar(&eduInstitution, "institution", "", "School or university")
		c.Flags().StringVar(&eduDegree, "degree", "", "Degree")
		c.Flags().StringVar(&eduField, "field", "", "Field of study")
		c.Flags().StringVar(&eduStart, "start", "", "Start month (YYYY-MM)")
		c.Flags().StringVar(&eduEnd, "end", "", "Graduation month (YYYY-MM)")
		c.Flags().StringVar(&eduGPA, "gpa", "", "Grade point average")
	}

	for _, c := range []*cobra.Command{addProjectCmd, updateProjectCmd} {
		c.Flags().StringVar(&projName, "name", "", "Project name")
		c.Flags().StringVar(&projDescription, "description", "", "What the project does")
		c.Flags().StringSliceVar(&projTechnologies, "tech", nil, "Technologies used (comma-separated or repeated)")
		c.Flags().StringVar(&projLink, "link", "", "Project URL")
		c.Flags().StringVar(&projStart, "start", "", "Start month (YYYY-MM)")
		c.Flags().StringVar(&projEnd, "end", "", "End month (YYYY-MM)")
	}

	rootCmd.AddCommand(showCmd, setCmd, summaryCmd,
		addExperienceCmd, addEducationCmd, addProjectCmd,
		updateExperienceCmd, updateEducationCmd, updateProjectCmd,
		addSkillCmd, addCertificationCmd, addLanguageCmd,
		removeCmd, moveCmd, templateCmd)
}

func runShow(cmd *cobra.Command, _ []string) error {
	return withSession(cmd, func(s *session) error {
		observability.NewPrinter(cmd.OutOrStdout()).PrintDocument(s.store.Document(), s.store.Template())
		return nil
	})
}

func runSet(cmd *cobra.Command, _ []string) error {
	var patch editor.PersonalInfoPatch
	fields := []struct {
		flag  string
		value *string
		dst   **string
	}{
		{"first-name", &setFirstName, &patch.FirstName},
		{"last-name", &setLastName, &patch.LastName},
		{"email", &setEmail, &patch.Email},
		{"phone", &setPhone, &patch.Phone},
		{"address", &setAddress, &patch.Address},
		{"linkedin", &setLinkedIn, &patch.LinkedIn},
		{"github", &setGitHub, &patch.GitHub},
		{"website", &setWebsite, &patch.Website},
		{"title", &setTitle, &patch.Title},
	}
	changed := 0
	for _, f := range fields {
		if cmd.Flags().Changed(f.flag) {
			*f.dst = f.value
			changed++
		}
	}
	if changed == 0 {
		return fmt.Errorf("nothing to set: pass at least one field flag")
	}

	return withSession(cmd, func(s *session) error {
		if err := report(cmd, s.store.UpdatePersonalInfo(patch)); err != nil {
			return err
		}
		for _, issue := range s.store.ValidateContact() {
			settings.log.WithField("field", issue.Field).Warn(issue.Message)
		}
		return nil
	})
}

func runSummary(cmd *cobra.Command, args []string) error {
	return withSession(cmd, func(s *session) error {
		return report(cmd, s.store.UpdateSummary(strings.Join(args, " ")))
	})
}

func runAddExperience(cmd *cobra.Command, _ []string) error {
	if expCurrent && expEnd != "" {
		return fmt.Errorf("--current and --end cannot be used together")
	}
	entry := types.ExperienceEntry{
		Company:      expCompany,
		Position:     expPosition,
		StartDate:    expStart,
		EndDate:      expEnd,
		Current:      expCurrent,
		Description:  expDescription,
		Achievements: append([]string{}, expAchievements...),
	}
	return withSession(cmd, func(s *session) error {
		return report(cmd, editor.AddItem(s.store, editor.Experience, entry))
	})
}

func runAddEducation(cmd *cobra.Command, _ []string) error {
	entry := types.EducationEntry{
		Institution: eduInstitution,
		Degree:      eduDegree,
		Field:       eduField,
		StartDate:   eduStart,
		EndDate:     eduEnd,
		GPA:         eduGPA,
	}
	return withSession(cmd, func(s *session) error {
		return report(cmd, editor.AddItem(s.store, editor.Education, entry))
	})
}

func runAddProject(cmd *cobra.Command, _ []string) error {
	if projName == "" {
		return fmt.Errorf("--name is required")
	}
	entry := types.ProjectEntry{
		Name:         projName,
		Description:  projDescription,
		Technologies: append([]string{}, projTechnologies...),
		Link:         projLink,
		StartDate:    projStart,
		EndDate:      projEnd,
	}
	return withSession(cmd, func(s *session) error {
		return report(cmd, editor.AddItem(s.store, editor.Projects, entry))
	})
}

// fieldEdit applies one field flag to an entry when the flag was passed.
type fieldEdit[T any] struct {
	flag  string
	apply func(*T)
}

// updateEntry applies the edits whose flags were passed to the entry at the
// 1-based position, keeping its id and place in the list.
func updateEntry[T any](cmd *cobra.Command, list editor.List[T], position string, edits []fieldEdit[T]) error {
	var apply []func(*T)
	for _, e := range edits {
		if cmd.Flags().Changed(e.flag) {
			apply = append(apply, e.apply)
		}
	}
	if len(apply) == 0 {
		return fmt.Errorf("nothing to update: pass at least one field flag")
	}

	return withSession(cmd, func(s *session) error {
		index, err := parsePosition(list.Name(), position, len(editor.Items(s.store, list)))
		if err != nil {
			return err
		}
		return report(cmd, editor.UpdateItem(s.store, list, index, func(item *T) {
			for _, fn := range apply {
				fn(item)
			}
		}))
	})
}

func runUpdateExperience(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	if flags.Changed("current") && expCurrent && flags.Changed("end") && expEnd != "" {
		return fmt.Errorf("--current and --end cannot be used together")
	}
	return updateEntry(cmd, editor.Experience, args[0], []fieldEdit[types.ExperienceEntry]{
		{"company", func(e *types.ExperienceEntry) { e.Company = expCompany }},
		{"position", func(e *types.ExperienceEntry) { e.Position = expPosition }},
		{"start", func(e *types.ExperienceEntry) { e.StartDate = expStart }},
		{"end", func(e *types.ExperienceEntry) {
			e.EndDate = expEnd
			if expEnd != "" {
				e.Current = false
			}
		}},
		{"current", func(e *types.ExperienceEntry) {
			e.Current = expCurrent
			if expCurrent {
				e.EndDate = ""
			}
		}},
		{"description", func(e *types.ExperienceEntry) { e.Description = expDescription }},
		{"achievement", func(e *types.ExperienceEntry) { e.Achievements = append([]string{}, expAchievements...) }},
	})
}

func runUpdateEducation(cmd *cobra.Command, args []string) error {
	return updateEntry(cmd, editor.Education, args[0], []fieldEdit[types.EducationEntry]{
		{"institution", func(e *types.EducationEntry) { e.Institution = eduInstitution }},
		{"degree", func(e *types.EducationEntry) { e.Degree = eduDegree }},
		{"field", func(e *types.EducationEntry) { e.Field = eduField }},
		{"start", func(e *types.EducationEntry) { e.StartDate = eduStart }},
		{"end", func(e *types.EducationEntry) { e.EndDate = eduEnd }},
		{"gpa", func(e *types.EducationEntry) { e.GPA = eduGPA }},
	})
}

func runUpdateProject(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("name") && projName == "" {
		return fmt.Errorf("--name cannot be empty")
	}
	return updateEntry(cmd, editor.Projects, args[0], []fieldEdit[types.ProjectEntry]{
		{"name", func(p *types.ProjectEntry) { p.Name = projName }},
		{"description", func(p *types.ProjectEntry) { p.Description = projDescription }},
		{"tech", func(p *types.ProjectEntry) { p.Technologies = append([]string{}, projTechnologies...) }},
		{"link", func(p *types.ProjectEntry) { p.Link = projLink }},
		{"start", func(p *types.ProjectEntry) { p.StartDate = projStart }},
		{"end", func(p *types.ProjectEntry) { p.EndDate = projEnd }},
	})
}

// runAddValues appends each argument to a string list unless it is already present.
func runAddValues(list editor.List[string]) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(s *session) error {
			existing := editor.Items(s.store, list)
			added := 0
			for _, arg := range args {
				v := strings.TrimSpace(arg)
				if v == "" || slices.Contains(existing, v) {
					continue
				}
				res := editor.AddItem(s.store, list, v)
				if !res.Success {
					return report(cmd, res)
				}
				existing = append(existing, v)
				added++
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added %d to %s\n", added, list.Name())
			return nil
		})
	}
}

// listOps binds the generic list operations of one section for positional commands.
type listOps struct {
	length func(*editor.Store) int
	remove func(*editor.Store, int) types.Result
	move   func(*editor.Store, int, int) types.Result
}

func bindList[T any](list editor.List[T]) listOps {
	return listOps{
		length: func(s *editor.Store) int { return len(editor.Items(s, list)) },
		remove: func(s *editor.Store, i int) types.Result { return editor.RemoveItem(s, list, i) },
		move:   func(s *editor.Store, from, to int) types.Result { return editor.MoveItem(s, list, from, to) },
	}
}

var listSections = map[string]listOps{
	editor.Experience.Name():     bindList(editor.Experience),
	editor.Education.Name():      bindList(editor.Education),
	editor.Projects.Name():       bindList(editor.Projects),
	editor.Skills.Name():         bindList(editor.Skills),
	editor.Certifications.Name(): bindList(editor.Certifications),
	editor.Languages.Name():      bindList(editor.Languages),
}

func lookupSection(name string) (listOps, error) {
	ops, ok := listSections[strings.ToLower(name)]
	if !ok {
		names := make([]string, 0, len(listSections))
		for n := range listSections {
			names = append(names, n)
		}
		slices.Sort(names)
		return listOps{}, fmt.Errorf("unknown section %q (want one of %s)", name, strings.Join(names, ", "))
	}
	return ops, nil
}

// parsePosition converts a 1-based position argument into an index into a list of length n.
func parsePosition(section, arg string, n int) (int, error) {
	pos, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid position %q: %w", arg, err)
	}
	if pos < 1 || pos > n {
		return 0, fmt.Errorf("no %s entry at position %d (have %d)", section, pos, n)
	}
	return pos - 1, nil
}

func runRemove(cmd *cobra.Command, args []string) error {
	ops, err := lookupSection(args[0])
	if err != nil {
		return err
	}
	return withSession(cmd, func(s *session) error {
		index, err := parsePosition(args[0], args[1], ops.length(s.store))
		if err != nil {
			return err
		}
		return report(cmd, ops.remove(s.store, index))
	})
}

func runMove(cmd *cobra.Command, args []string) error {
	ops, err := lookupSection(args[0])
	if err != nil {
		return err
	}
	return withSession(cmd, func(s *session) error {
		n := ops.length(s.store)
		from, err := parsePosition(args[0], args[1], n)
		if err != nil {
			return err
		}
		to, err := parsePosition(args[0], args[2], n)
		if err != nil {
			return err
		}
		return report(cmd, ops.move(s.store, from, to))
	})
}

func runTemplate(cmd *cobra.Command, args []string) error {
	return withSession(cmd, func(s *session) error {
		if len(args) == 1 {
			return report(cmd, s.store.SetTemplate(args[0]))
		}
		current := s.store.Template()
		for _, t := range types.Templates {
			mark := " "
			if t.ID == current {
				mark = "*"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %-13s %s\n", mark, t.ID, t.Name)
		}
		return nil
	})
}
