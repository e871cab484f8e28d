package runestone

// Artifact is the outcome of deciphering a transaction that carries a
// runestone output. It is either a *Runestone or a *Cenotaph.
type Artifact interface {
	// MintID returns the rune the artifact mints, if any.
	MintID() *RuneID

	isArtifact()
}

// Cenotaph is a malformed runestone. It keeps only what it claims: the rune
// it mints and the name it etches. Every rune input to a cenotaph is burned.
type Cenotaph struct {
	Flaw    Flaw
	Mint    *RuneID
	Etching *Rune
}

// MintID returns the mint id of the cenotaph.
func (c *Cenotaph) MintID() *RuneID { return c.Mint }

func (*Cenotaph) isArtifact() {}

// MintID returns the mint id of the runestone.
func (r *Runestone) MintID() *RuneID { return r.Mint }

func (*Runestone) isArtifact() {}
