/*
Package teamsdk provides a client for the teamdir preview API.

# Overview

The preview server (teamdir serve) exposes the loaded team directory as JSON
next to the rendered pages. The response types in this package are the wire
format of that API and are shared by the server handlers.

	client := teamsdk.NewSDKClient("http://localhost:8080")

	// Everyone licensed in Texas, alphabetical.
	list, err := client.ListMembers(ctx, teamsdk.ListMembersParams{
		State: "TX",
		Sort:  "name",
	})

	// One profile.
	member, err := client.GetMember(ctx, "ana-diaz")
	if teamsdk.IsNotFound(err) {
		// unknown slug
	}

	// Filter options.
	states, err := client.ListStates(ctx)

# Errors

Non-2xx responses are returned as *APIError carrying the HTTP status and the
error code from the JSON body.

# Health

GetLiveness always succeeds while the server runs. GetReadiness returns an
*APIError with status 503 until the first snapshot of team data is loaded.
*/
package teamsdk
