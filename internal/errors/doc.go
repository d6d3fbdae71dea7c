// Package errors provides structured error handling for the party and
// character-creation services.
//
// Errors carry a code, a user-presentable message, optional metadata, and an
// optional wrapped cause. Codes mirror the gRPC canonical codes so the serving
// layer can convert them directly.
//
// Creating errors:
//
//	err := errors.NotFound("party not found")
//	err := errors.PermissionDenied("only the leader can invite members")
//
// Adding metadata:
//
//	err := errors.NotFound("party not found").
//	    WithMeta("guild_id", guildID).
//	    WithMeta("leader_id", leaderID)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load party")
//	}
//
// Checking errors:
//
//	if errors.IsNotFound(err) {
//	    // the caller has no party
//	}
//
// Layer conventions:
//   - Repositories return NotFound, AlreadyExists, DataLoss, and Aborted
//     (version conflict), wrapping store errors with context.
//   - Orchestrators return InvalidArgument for bad inputs, PermissionDenied
//     for authorization failures, and FailedPrecondition for capacity or
//     completeness violations.
//   - The serving layer converts everything with ToGRPCError; nothing in this
//     taxonomy is expected to escape unhandled.
package errors
