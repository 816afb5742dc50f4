package vault

import "time"

// Item is one stored credential. Password holds the encrypted payload in
// the persisted "hex(iv):hex(ciphertext)" encoding; it is decrypted only by
// the Service on authorized listing, never handed out raw.
type Item struct {
	ID        string
	UserID    string
	SiteName  string
	Link      string
	Password  string
	CreatedAt time.Time
}
