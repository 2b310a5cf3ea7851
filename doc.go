// Package vfsource turns a remote file store into a sequence of bounded,
// acknowledgeable payloads.
//
// A Source periodically inspects a remote listing, detects files that are new
// or changed since last observed (by name, modification time, and size),
// retrieves their content into local storage, and hands them out as ordered
// payloads of bounded size. Receivers must resolve every payload with OnSend
// or OnFailure; failed payloads are redelivered ahead of newer work.
//
// The Source never polls on its own. Each call to Receive drains pending work
// and runs at most one poll cycle when nothing is pending, so the caller owns
// the cadence (a ticker, a scheduler, an inbound trigger). Multiple
// goroutines may call Receive concurrently and are handed disjoint payloads.
//
// Basic usage against any vfs backend:
//
//	remote, _ := vfssimple.NewLocation("sftp://user@host/inbound/")
//	staging, _ := vfssimple.NewLocation("file:///var/spool/inbound/")
//
//	source, err := vfsource.NewLocationSource(remote, staging,
//		vfsource.WithMaxMessagesPerPayload(25),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	for range ticker.C {
//		msg, err := source.Receive()
//		if err != nil {
//			log.Printf("poll failed: %v", err)
//			continue
//		}
//		if msg == nil {
//			continue // nothing new
//		}
//		if err := deliver(msg); err != nil {
//			source.OnFailure(msg, err)
//		} else {
//			source.OnSend(msg)
//		}
//	}
//
// Change detection is optimistic: a descriptor is accepted into the backlog
// the moment it is judged dirty, before retrieval runs. A file whose
// retrieval fails is therefore not retried until its remote timestamp or size
// changes again; use WithRetrievalErrorHandler to observe those drops.
package vfsource
