// Package drafts keeps LLM recipe drafts on disk so a generated proposal can
// be modified or saved after the client restarts.
//
// Drafts are stored as JSON payloads keyed by the draft id the backend
// returned, together with the prompt that produced them.
//
//	repo := drafts.NewSQLiteRepository(db)
//	_ = repo.Save(ctx, query, draft)
//	last, _ := repo.Latest(ctx)
package drafts
