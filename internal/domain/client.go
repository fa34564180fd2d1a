package domain

type Client struct {
	ID           string
	Name         string
	ContactName  string
	Email        string
	Phone        string
	Address      string
	ProjectCount int
}

// ClientPatch carries a partial update; nil fields are left untouched.
type ClientPatch struct {
	Name         *string
	ContactName  *string
	Email        *string
	Phone        *string
	Address      *string
	ProjectCount *int
}

func (p ClientPatch) Apply(c *Client) {
	c.Name = StrFromPtr(c.Name, p.Name)
	c.ContactName = StrFromPtr(c.ContactName, p.ContactName)
	c.Email = StrFromPtr(c.Email, p.Email)
	c.Phone = StrFromPtr(c.Phone, p.Phone)
	c.Address = StrFromPtr(c.Address, p.Address)
	c.ProjectCount = IntFromPtr(c.ProjectCount, p.ProjectCount)
}
