package contentcenter

import (
	"fmt"
	"os"

	"github.com/kart-io/content-center/internal/model"
	"github.com/kart-io/content-center/pkg/auth/tokenstore"
	"github.com/kart-io/content-center/pkg/utils/json"
)

// Seed is the startup data file: the provisioned credential tuples, the
// demo user whose profile the service serves, and the channel list.
type Seed struct {
	Credentials []tokenstore.Credential `json:"credentials"`
	User        model.User              `json:"user"`
	Channels    []model.Channel         `json:"channels"`
}

// LoadSeed reads and validates the seed file.
func LoadSeed(path string) (*Seed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed Seed
	if err := json.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}

	if len(seed.Credentials) == 0 {
		return nil, fmt.Errorf("seed file %s has no provisioned credentials", path)
	}
	for i, cred := range seed.Credentials {
		if cred.Identifier == "" || cred.Code == "" || cred.Token == "" {
			return nil, fmt.Errorf("seed credential %d is incomplete", i)
		}
	}
	if seed.User.ID == "" {
		return nil, fmt.Errorf("seed file %s has no user", path)
	}

	return &seed, nil
}
