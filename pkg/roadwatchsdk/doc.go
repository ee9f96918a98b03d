// Package roadwatchsdk is a Go client for the roadwatch HTTP API and holds
// the request and response types the server encodes.
//
// Reads of reports, works, companies and places are public:
//
//	c := roadwatchsdk.NewClient("http://localhost:8080")
//	reports, err := c.ListReports(ctx)
//
// Everything else needs a session obtained through Login or FederatedLogin:
//
//	manager, _, err := c.Login(ctx, "chef@mairie.mg", "secret123")
//	if err != nil {
//		return err
//	}
//	res, err := manager.UpdateReportStatus(ctx, reportID, "en cours")
//
// Failed calls return an *APIError that matches the exported sentinels with
// errors.Is:
//
//	if errors.Is(err, roadwatchsdk.ErrAccountLocked) {
//		// ask an administrator to unlock the account
//	}
package roadwatchsdk
