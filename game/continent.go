package game

// Continent is a fixed group of territories granting bonus armies to a
// competitor who holds every member. Immutable after construction except
// through territory ownership changes.
type Continent struct {
	name        string
	code        string
	bonus       int
	territories []*Territory
}

// Name returns the continent's display name.
func (c *Continent) Name() string { return c.name }

// Code returns the two-letter continent code ("NA", "EU", ...).
func (c *Continent) Code() string { return c.code }

// Bonus returns the army bonus awarded to the continent's sole conqueror.
func (c *Continent) Bonus() int { return c.bonus }

// Territories returns the member territories in map order.
func (c *Continent) Territories() []*Territory {
	out := make([]*Territory, len(c.territories))
	copy(out, c.territories)
	return out
}

// Size returns the number of member territories.
func (c *Continent) Size() int { return len(c.territories) }

// Conqueror returns the competitor holding every member territory, if one
// exists.
func (c *Continent) Conqueror() (*Player, bool) {
	if len(c.territories) == 0 {
		return nil, false
	}
	owner := c.territories[0].owner
	if owner == nil {
		return nil, false
	}
	for _, t := range c.territories[1:] {
		if t.owner != owner {
			return nil, false
		}
	}
	return owner, true
}

// byIndex returns the member territory at the given zero-based index.
func (c *Continent) byIndex(i int) (*Territory, bool) {
	if i < 0 || i >= len(c.territories) {
		return nil, false
	}
	return c.territories[i], true
}
