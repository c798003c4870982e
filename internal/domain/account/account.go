// Package account exposes the connected social accounts of a user, as
// reported by the aggregation API's profile endpoint.
package account

// Status of a connected account.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// ConnectedAccount is the single normalized shape the rest of the
// system sees, regardless of which directory payload the upstream
// returned. Read-only; this service never mutates accounts.
type ConnectedAccount struct {
	Platform    string `json:"platform"`
	DisplayName string `json:"displayName"`
	ExternalID  string `json:"externalId"`
	Status      string `json:"status"`
}

// DirectoryResponse is the wire shape of the profile endpoint. The
// upstream answers in one of two forms depending on the collaborator
// path: a flat activeSocialAccounts list, or a richer displayNames
// list. Both are declared so normalization can try them in order.
type DirectoryResponse struct {
	ActiveSocialAccounts []ActiveAccount `json:"activeSocialAccounts"`
	DisplayNames         []DisplayName   `json:"displayNames"`
}

// ActiveAccount is shape A: platform with optional name and id.
type ActiveAccount struct {
	Platform string `json:"platform"`
	Name     string `json:"name"`
	ID       string `json:"id"`
}

// DisplayName is shape B: richer per-account detail.
type DisplayName struct {
	Platform    string `json:"platform"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	ID          string `json:"id"`
	ProfileURL  string `json:"profileUrl"`
	Followers   int    `json:"followers"`
	IsVerified  bool   `json:"isVerified"`
	Verified    bool   `json:"verified"`
}

// Normalize flattens whichever directory shape is present into the
// uniform ConnectedAccount list: shape A first, then shape B, else
// empty. Entries without a platform or any identifier are dropped.
func (r *DirectoryResponse) Normalize() []ConnectedAccount {
	if len(r.ActiveSocialAccounts) > 0 {
		accounts := make([]ConnectedAccount, 0, len(r.ActiveSocialAccounts))
		for _, a := range r.ActiveSocialAccounts {
			if a.Platform == "" {
				continue
			}
			accounts = append(accounts, ConnectedAccount{
				Platform:    a.Platform,
				DisplayName: firstNonEmpty(a.Name, a.Platform),
				ExternalID:  firstNonEmpty(a.ID, a.Platform),
				Status:      StatusActive,
			})
		}
		return accounts
	}

	accounts := make([]ConnectedAccount, 0, len(r.DisplayNames))
	for _, d := range r.DisplayNames {
		if d.Platform == "" {
			continue
		}
		if d.Username == "" && d.DisplayName == "" && d.ID == "" {
			continue
		}
		accounts = append(accounts, ConnectedAccount{
			Platform:    d.Platform,
			DisplayName: firstNonEmpty(d.DisplayName, d.Username, d.ID),
			ExternalID:  firstNonEmpty(d.ID, d.Username),
			Status:      StatusActive,
		})
	}
	return accounts
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
