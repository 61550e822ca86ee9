package commands

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/johnquangdev/event-planner/internal/domain/entities"
	"github.com/johnquangdev/event-planner/internal/usecase/bulk"
)

// guestRecord is one guest of a YAML or JSON guest file
type guestRecord struct {
	ID               string `yaml:"id"`
	Name             string `yaml:"name"`
	Email            string `yaml:"email"`
	Phone            string `yaml:"phone"`
	RSVPStatus       string `yaml:"rsvp_status"`
	CheckedInAt      string `yaml:"checked_in_at"`
	InvitationSentAt string `yaml:"invitation_sent_at"`
	PlusOne          bool   `yaml:"plus_one"`
	PlusOneName      string `yaml:"plus_one_name"`
}

type guestFile struct {
	Guests []guestRecord `yaml:"guests"`
}

// LoadGuests decodes a guest file. JSON input is accepted as YAML.
// Records with an unparsable id keep a nil ID so classification reports them as incomplete.
func LoadGuests(r io.Reader) ([]*entities.Guest, error) {
	var file guestFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode guest file: %w", err)
	}

	guests := make([]*entities.Guest, 0, len(file.Guests))
	for i, rec := range file.Guests {
		g, err := rec.toGuest()
		if err != nil {
			return nil, fmt.Errorf("guest #%d: %w", i+1, err)
		}
		guests = append(guests, g)
	}
	return guests, nil
}

func (rec guestRecord) toGuest() (*entities.Guest, error) {
	g := &entities.Guest{
		Name:       rec.Name,
		RSVPStatus: entities.RSVPStatus(rec.RSVPStatus),
		PlusOne:    rec.PlusOne,
	}
	if g.RSVPStatus == "" {
		g.RSVPStatus = entities.RSVPStatusPending
	}
	if id, err := uuid.Parse(rec.ID); err == nil {
		g.ID = id
	}
	if rec.Email != "" {
		g.Email = &rec.Email
	}
	if rec.Phone != "" {
		g.Phone = &rec.Phone
	}
	if rec.PlusOneName != "" {
		g.PlusOneName = &rec.PlusOneName
	}

	var err error
	if g.CheckedInAt, err = parseTimestamp(rec.CheckedInAt); err != nil {
		return nil, fmt.Errorf("checked_in_at: %w", err)
	}
	if g.InvitationSentAt, err = parseTimestamp(rec.InvitationSentAt); err != nil {
		return nil, fmt.Errorf("invitation_sent_at: %w", err)
	}
	return g, nil
}

func parseTimestamp(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ClassifyCmd creates the classify command
func ClassifyCmd(app *AppContext) *cobra.Command {
	var action string

	cmd := &cobra.Command{
		Use:   "classify <guests.yaml>",
		Short: "Show which guests of a file each bulk action applies to",
		Long: `Reads a YAML or JSON guest file ({"guests": [...]}) and prints the RSVP breakdown
with the eligible count of every action, or the detailed split for one action.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open guest file: %w", err)
			}
			defer f.Close()

			guests, err := LoadGuests(f)
			if err != nil {
				return err
			}
			app.Logger.Debug("cli.classify.loaded", zap.String("file", args[0]), zap.Int("guests", len(guests)))

			if action == "" {
				return WriteOverview(app.Out, guests)
			}
			a, err := bulk.ParseAction(action)
			if err != nil {
				return err
			}
			return WriteClassification(app.Out, guests, a)
		},
	}
	cmd.Flags().StringVarP(&action, "action", "a", "", "Action to detail (send_invitations, send_reminders, check_in, undo_check_in, update_rsvp, delete)")
	return cmd
}

// WriteOverview prints the breakdown and the eligible count of every action
func WriteOverview(w io.Writer, guests []*entities.Guest) error {
	breakdown := bulk.Aggregate(guests)

	fmt.Fprintf(w, "%d guest(s)\n", len(guests))
	for _, s := range entities.RSVPStatuses() {
		fmt.Fprintf(w, "  %-9s %d\n", s, breakdown[s])
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ACTION\tELIGIBLE\tINELIGIBLE")
	for _, a := range bulk.AllActions() {
		result, err := bulk.Classify(guests, a)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\n", a, len(result.Eligible), len(result.Ineligible))
	}
	return tw.Flush()
}

// WriteClassification prints the eligible guests and the excluded ones with their reason
func WriteClassification(w io.Writer, guests []*entities.Guest, action bulk.Action) error {
	result, err := bulk.Classify(guests, action)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s\n%s\n\n", action.Title(), action.Describe(len(result.Eligible)))

	fmt.Fprintf(w, "Eligible (%d):\n", len(result.Eligible))
	for _, g := range result.Eligible {
		fmt.Fprintf(w, "  - %s\n", displayName(g))
	}

	if len(result.Ineligible) == 0 {
		return nil
	}
	fmt.Fprintf(w, "Ineligible (%d):\n", len(result.Ineligible))
	for _, g := range result.Ineligible {
		reason, _ := result.Reason(g)
		fmt.Fprintf(w, "  - %s: %s\n", displayName(g), reason)
	}
	return nil
}

func displayName(g *entities.Guest) string {
	if g == nil || strings.TrimSpace(g.Name) == "" {
		return "(sans nom)"
	}
	return g.Name
}
