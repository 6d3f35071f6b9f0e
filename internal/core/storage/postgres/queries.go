package postgres

// changeLogLockKey serializes change log appends so seq order equals commit
// order and the consumer never checkpoints past a row that commits later.
const changeLogLockKey int64 = 0x52414e4b // "RANK"

const (
	queryLockChangeLog = `SELECT pg_advisory_xact_lock($1)`

	// queryAppendChange returns no rows (sql.ErrNoRows) for a duplicate event ID.
	queryAppendChange = `
		INSERT INTO change_events (
			event_id, event_name, keys, old_image, new_image, recorded_at
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (event_id) DO NOTHING
		RETURNING seq
	`

	queryReadChangesAfter = `
		SELECT seq, event_id, event_name, keys, old_image, new_image, recorded_at
		FROM change_events
		WHERE seq > $1
		ORDER BY seq ASC
		LIMIT $2
	`

	queryReadCheckpoint = `SELECT checkpoint_cursor FROM stream_checkpoints WHERE consumer = $1`

	// queryWriteCheckpoint never moves a cursor backwards.
	queryWriteCheckpoint = `
		INSERT INTO stream_checkpoints (consumer, checkpoint_cursor, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (consumer) DO UPDATE SET
			checkpoint_cursor = GREATEST(stream_checkpoints.checkpoint_cursor, EXCLUDED.checkpoint_cursor),
			updated_at        = EXCLUDED.updated_at
	`
)

const (
	querySelectContestForUpdate = `
		SELECT pk, sk, lsi, athlete_id, contest_id, contest_date, contest_discipline, points
		FROM athlete_contests
		WHERE pk = $1 AND sk = $2
		FOR UPDATE
	`

	queryUpsertContest = `
		INSERT INTO athlete_contests (
			pk, sk, lsi, athlete_id, contest_id, contest_date, contest_discipline, points, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (pk, sk) DO UPDATE SET
			lsi                = EXCLUDED.lsi,
			athlete_id         = EXCLUDED.athlete_id,
			contest_id         = EXCLUDED.contest_id,
			contest_date       = EXCLUDED.contest_date,
			contest_discipline = EXCLUDED.contest_discipline,
			points             = EXCLUDED.points,
			updated_at         = EXCLUDED.updated_at
	`

	queryDeleteContest = `DELETE FROM athlete_contests WHERE pk = $1 AND sk = $2`

	// Range scans over the (pk, lsi, sk) index, newest first. The prefix filter
	// is expressed as [prefix, upperBound) so the index can serve it.
	queryContestsFirstPage = `
		SELECT pk, sk, lsi, athlete_id, contest_id, contest_date, contest_discipline, points
		FROM athlete_contests
		WHERE pk = $1
		  AND lsi >= $2
		  AND lsi < $3
		ORDER BY lsi DESC, sk DESC
		LIMIT $4
	`

	queryContestsAfterCursor = `
		SELECT pk, sk, lsi, athlete_id, contest_id, contest_date, contest_discipline, points
		FROM athlete_contests
		WHERE pk = $1
		  AND lsi >= $2
		  AND lsi < $3
		  AND (lsi, sk) < ($4, $5)
		ORDER BY lsi DESC, sk DESC
		LIMIT $6
	`
)

const (
	queryGetRanking = `
		SELECT age_category, discipline, gender, year, athlete_id,
			points, country, name, surname, updated_at
		FROM athlete_rankings
		WHERE age_category = $1
		  AND discipline = $2
		  AND gender = $3
		  AND year = $4
		  AND athlete_id = $5
	`

	queryPutRanking = `
		INSERT INTO athlete_rankings (
			age_category, discipline, gender, year, athlete_id,
			points, country, name, surname, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (age_category, discipline, gender, year, athlete_id) DO UPDATE SET
			points     = EXCLUDED.points,
			country    = EXCLUDED.country,
			name       = EXCLUDED.name,
			surname    = EXCLUDED.surname,
			updated_at = EXCLUDED.updated_at
	`

	queryIncrementRanking = `
		UPDATE athlete_rankings
		SET points = points + $6, updated_at = $7
		WHERE age_category = $1
		  AND discipline = $2
		  AND gender = $3
		  AND year = $4
		  AND athlete_id = $5
	`

	// queryApplyDelta claims the application ID for this ranking key and, only
	// if the claim succeeded, increments or creates the row. One statement, so
	// the claim and the increment commit together.
	queryApplyDelta = `
		WITH claimed AS (
			INSERT INTO ranking_applications (
				application_id, age_category, discipline, gender, year, athlete_id, delta, applied_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $11)
			ON CONFLICT DO NOTHING
			RETURNING application_id
		)
		INSERT INTO athlete_rankings (
			age_category, discipline, gender, year, athlete_id,
			points, country, name, surname, updated_at
		)
		SELECT $2::text, $3::text, $4::text, $5::integer, $6::text,
			$7::bigint, $8::text, $9::text, $10::text, $11::timestamptz
		FROM claimed
		ON CONFLICT (age_category, discipline, gender, year, athlete_id) DO UPDATE SET
			points     = athlete_rankings.points + EXCLUDED.points,
			updated_at = EXCLUDED.updated_at
	`

	queryListRankings = `
		SELECT age_category, discipline, gender, year, athlete_id,
			points, country, name, surname, updated_at
		FROM athlete_rankings
		WHERE discipline = $1
		  AND gender = $2
		  AND age_category = $3
		  AND year = $4
		ORDER BY points DESC, athlete_id ASC
		LIMIT $5
	`
)

const (
	queryGetAthlete = `
		SELECT id, name, surname, country, gender, age_category
		FROM athletes
		WHERE id = $1
	`

	queryPutAthlete = `
		INSERT INTO athletes (id, name, surname, country, gender, age_category, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			name         = EXCLUDED.name,
			surname      = EXCLUDED.surname,
			country      = EXCLUDED.country,
			gender       = EXCLUDED.gender,
			age_category = EXCLUDED.age_category,
			updated_at   = EXCLUDED.updated_at
	`
)
