package teamsdk

import (
	"context"
	"net/url"
)

// ListMembers returns the members matching params in display order.
func (c *SDKClient) ListMembers(ctx context.Context, params ListMembersParams) (*ListMembersResponse, error) {
	var resp ListMembersResponse
	if err := c.get(ctx, "/v1/members", params.values(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetMember returns the member with the given slug.
func (c *SDKClient) GetMember(ctx context.Context, slug string) (*Member, error) {
	var resp Member
	if err := c.get(ctx, "/v1/members/"+url.PathEscape(slug), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListStates returns the options of the state filter.
func (c *SDKClient) ListStates(ctx context.Context) ([]string, error) {
	var resp StatesResponse
	if err := c.get(ctx, "/v1/states", nil, &resp); err != nil {
		return nil, err
	}
	return resp.States, nil
}

// ListRoles returns the options of the role filter.
func (c *SDKClient) ListRoles(ctx context.Context) ([]string, error) {
	var resp RolesResponse
	if err := c.get(ctx, "/v1/roles", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Roles, nil
}

func (p ListMembersParams) values() url.Values {
	v := url.Values{}
	for key, val := range map[string]string{"q": p.Q, "role": p.Role, "state": p.State, "sort": p.Sort} {
		if val != "" {
			v.Set(key, val)
		}
	}
	return v
}
