package bulk

import (
	"fmt"

	"github.com/johnquangdev/event-planner/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/event-planner/internal/usecase/errors"
)

// Action is a batch operation that can be applied to a selection of guests
type Action string

const (
	ActionSendInvitations Action = "send_invitations"
	ActionSendReminders   Action = "send_reminders"
	ActionCheckIn         Action = "check_in"
	ActionUndoCheckIn     Action = "undo_check_in"
	ActionUpdateRSVP      Action = "update_rsvp"
	ActionDelete          Action = "delete"
)

// Ineligibility reasons shown next to each excluded guest
const (
	ReasonNoEmail          = "Aucune adresse email"
	ReasonReminderNoEmail  = "Invitation non envoyée"
	ReasonNotInvited       = "Pas encore invité"
	ReasonAlreadyCheckedIn = "Déjà enregistré"
	ReasonNotCheckedIn     = "Pas encore enregistré"
	ReasonIncompleteGuest  = "Données de l'invité incomplètes"
)

// precondition returns an empty string when the guest is eligible, the reason otherwise
type precondition func(g *entities.Guest) string

type rule struct {
	check       precondition
	title       string
	description string // printf pattern taking the eligible count
}

// rules is the single place where every Action is described.
// Adding an Action without a rule fails TestRulesCoverAllActions.
var rules = map[Action]rule{
	ActionSendInvitations: {
		check: func(g *entities.Guest) string {
			if !g.HasEmail() {
				return ReasonNoEmail
			}
			return ""
		},
		title:       "Envoyer les invitations",
		description: "%d invité(s) recevront une invitation par email",
	},
	ActionSendReminders: {
		check: func(g *entities.Guest) string {
			if !g.HasEmail() {
				return ReasonReminderNoEmail
			}
			if !g.IsInvited() {
				return ReasonNotInvited
			}
			return ""
		},
		title:       "Envoyer un rappel",
		description: "%d invité(s) recevront un rappel par email",
	},
	ActionCheckIn: {
		check: func(g *entities.Guest) string {
			if g.IsCheckedIn() {
				return ReasonAlreadyCheckedIn
			}
			return ""
		},
		title:       "Enregistrer l'arrivée",
		description: "%d invité(s) seront marqués comme arrivés",
	},
	ActionUndoCheckIn: {
		check: func(g *entities.Guest) string {
			if !g.IsCheckedIn() {
				return ReasonNotCheckedIn
			}
			return ""
		},
		title:       "Annuler l'enregistrement",
		description: "%d invité(s) verront leur arrivée annulée",
	},
	ActionUpdateRSVP: {
		check:       func(*entities.Guest) string { return "" },
		title:       "Modifier le statut RSVP",
		description: "%d invité(s) verront leur statut RSVP modifié",
	},
	ActionDelete: {
		check:       func(*entities.Guest) string { return "" },
		title:       "Supprimer les invités",
		description: "%d invité(s) seront définitivement supprimés",
	},
}

// AllActions returns every supported action
func AllActions() []Action {
	return []Action{
		ActionSendInvitations,
		ActionSendReminders,
		ActionCheckIn,
		ActionUndoCheckIn,
		ActionUpdateRSVP,
		ActionDelete,
	}
}

// ToolbarActions returns the actions offered by the bulk actions bar.
// send_reminders is classified but not offered on the toolbar.
func ToolbarActions() []Action {
	return []Action{
		ActionSendInvitations,
		ActionUpdateRSVP,
		ActionCheckIn,
		ActionUndoCheckIn,
		ActionDelete,
	}
}

// IsValid reports whether the action is known
func (a Action) IsValid() bool {
	_, ok := rules[a]
	return ok
}

// Title returns the dialog title of the action
func (a Action) Title() string {
	return rules[a].title
}

// Describe returns the dialog description for the given eligible count
func (a Action) Describe(eligible int) string {
	r, ok := rules[a]
	if !ok {
		return ""
	}
	return fmt.Sprintf(r.description, eligible)
}

// ParseAction converts a raw value into an Action
func ParseAction(raw string) (Action, error) {
	a := Action(raw)
	if !a.IsValid() {
		return "", fmt.Errorf("%w: %q", usecaseErrors.ErrInvalidBulkAction, raw)
	}
	return a, nil
}
