package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bustedglowsticks/quantum-yield-empire-sub002/internal/model"
)

// ArchiveRepo persists governance state to Postgres as a write-behind
// history. The in-memory store stays authoritative; losing the archive
// never affects tally correctness, so callers log archive errors rather
// than failing the operation.
type ArchiveRepo struct {
	pool *pgxpool.Pool
}

func NewArchiveRepo(pool *pgxpool.Pool) *ArchiveRepo {
	return &ArchiveRepo{pool: pool}
}

// SaveProposal upserts a proposal row, options encoded as JSONB.
func (r *ArchiveRepo) SaveProposal(ctx context.Context, p *model.Proposal) error {
	options, err := json.Marshal(p.Options)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO proposals (proposal_id, title, description, options, created_at, expires_at, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (proposal_id) DO UPDATE
		SET status = EXCLUDED.status`,
		p.ID, p.Title, p.Description, options, p.CreatedAt, p.ExpiresAt, string(p.Status))
	return err
}

// SaveStake upserts a voter's current stake on a proposal. Re-votes
// overwrite the previous row, mirroring the ledger's last-write-wins
// semantics.
func (r *ArchiveRepo) SaveStake(ctx context.Context, proposalID string, s *model.StakeRecord) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO stakes (proposal_id, voter, option_name, raw_amount, boost_multiplier, boosted_amount, cast_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (proposal_id, voter) DO UPDATE
		SET option_name = EXCLUDED.option_name,
		    raw_amount = EXCLUDED.raw_amount,
		    boost_multiplier = EXCLUDED.boost_multiplier,
		    boosted_amount = EXCLUDED.boosted_amount,
		    cast_at = EXCLUDED.cast_at`,
		proposalID, s.Voter, s.Option, s.RawAmount, s.BoostMultiplier, s.BoostedAmount, s.CastAt)
	return err
}

// SaveTallyResult records a tally outcome and marks the proposal row
// tallied, atomically.
func (r *ArchiveRepo) SaveTallyResult(ctx context.Context, p *model.Proposal, res *model.TallyResult) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	options, err := json.Marshal(res.Options)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO tally_results (proposal_id, title, winning_option, options, total_boosted, eco_percentage, total_voters, tallied_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (proposal_id) DO NOTHING`,
		res.ProposalID, p.Title, res.WinningOption, options,
		res.TotalBoosted, res.EcoPercentage, res.TotalVoters, res.TalliedAt)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `UPDATE proposals SET status = 'tallied' WHERE proposal_id = $1`, res.ProposalID)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// SnapshotStakes replaces a proposal's archived stake set with the
// given snapshot in one transaction. Used by the archive worker's
// batched flush.
func (r *ArchiveRepo) SnapshotStakes(ctx context.Context, proposalID string, stakes []model.StakeRecord) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `DELETE FROM stakes WHERE proposal_id = $1`, proposalID)
	if err != nil {
		return err
	}

	for i := range stakes {
		s := &stakes[i]
		_, err = tx.Exec(ctx, `
			INSERT INTO stakes (proposal_id, voter, option_name, raw_amount, boost_multiplier, boosted_amount, cast_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			proposalID, s.Voter, s.Option, s.RawAmount, s.BoostMultiplier, s.BoostedAmount, s.CastAt)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// MarkExpired flips archived proposal rows to the expired status.
func (r *ArchiveRepo) MarkExpired(ctx context.Context, proposalIDs []string) error {
	for _, id := range proposalIDs {
		_, err := r.pool.Exec(ctx, `
			UPDATE proposals SET status = 'expired'
			WHERE proposal_id = $1 AND status = 'active'`, id)
		if err != nil {
			return err
		}
	}
	return nil
}

// CountArchivedResults returns the number of archived tally results.
func (r *ArchiveRepo) CountArchivedResults(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM tally_results`).Scan(&count)
	return count, err
}

// TalliedSince returns archived tally results recorded after the given
// timestamp, oldest first. Feeds the dashboard collaborators.
func (r *ArchiveRepo) TalliedSince(ctx context.Context, since time.Time) ([]model.ResultsDeltaEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT proposal_id, title, winning_option, total_boosted, eco_percentage, tallied_at
		FROM tally_results
		WHERE tallied_at > $1
		ORDER BY tallied_at ASC`, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.ResultsDeltaEntry
	for rows.Next() {
		var e model.ResultsDeltaEntry
		var talliedAt time.Time
		err := rows.Scan(&e.ProposalID, &e.Title, &e.WinningOption, &e.TotalBoosted, &e.EcoPercentage, &talliedAt)
		if err != nil {
			return nil, err
		}
		e.TalliedAt = talliedAt.UTC().Format(time.RFC3339)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
