package vfsource_test

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/c2fo/vfs/contrib/vfsource"
	vfsmocks "github.com/c2fo/vfs/v7/mocks"
)

type locationTestSuite struct {
	suite.Suite
}

func (s *locationTestSuite) TestNewLocationListerValidation() {
	_, err := vfsource.NewLocationLister(nil)
	s.ErrorIs(err, vfsource.ErrNilLocation)
}

func (s *locationTestSuite) TestListFiles() {
	hourAgo := time.Now().UTC().Add(-time.Hour)
	loc := vfsmocks.NewLocation(s.T())
	loc.EXPECT().List().Return([]string{"a.txt", "b.txt"}, nil)

	fileA := vfsmocks.NewFile(s.T())
	fileA.EXPECT().LastModified().Return(&hourAgo, nil)
	fileA.EXPECT().Size().Return(uint64(100), nil)
	loc.EXPECT().NewFile("a.txt").Return(fileA, nil)

	fileB := vfsmocks.NewFile(s.T())
	fileB.EXPECT().LastModified().Return(&hourAgo, nil)
	fileB.EXPECT().Size().Return(uint64(200), nil)
	loc.EXPECT().NewFile("b.txt").Return(fileB, nil)

	lister, err := vfsource.NewLocationLister(loc)
	s.Require().NoError(err)

	descriptors, err := lister.ListFiles()
	s.Require().NoError(err)
	s.Equal([]vfsource.Descriptor{
		{Name: "a.txt", Modified: hourAgo, Size: 100},
		{Name: "b.txt", Modified: hourAgo, Size: 200},
	}, descriptors)
}

func (s *locationTestSuite) TestListFilesByRegex() {
	hourAgo := time.Now().UTC().Add(-time.Hour)
	re := regexp.MustCompile(`\.csv$`)

	loc := vfsmocks.NewLocation(s.T())
	loc.EXPECT().ListByRegex(re).Return([]string{"report.csv"}, nil)

	file := vfsmocks.NewFile(s.T())
	file.EXPECT().LastModified().Return(&hourAgo, nil)
	file.EXPECT().Size().Return(uint64(50), nil)
	loc.EXPECT().NewFile("report.csv").Return(file, nil)

	lister, err := vfsource.NewLocationLister(loc, vfsource.WithListRegex(re))
	s.Require().NoError(err)

	descriptors, err := lister.ListFiles()
	s.Require().NoError(err)
	s.Len(descriptors, 1)
	s.Equal("report.csv", descriptors[0].Name)
}

func (s *locationTestSuite) TestListFilesErrors() {
	tests := []struct {
		name       string
		setupMocks func(*vfsmocks.Location)
		wantErr    string
	}{
		{
			name: "list error",
			setupMocks: func(loc *vfsmocks.Location) {
				loc.EXPECT().List().Return(nil, errors.New("connection reset"))
			},
			wantErr: "error listing files",
		},
		{
			name: "new file error",
			setupMocks: func(loc *vfsmocks.Location) {
				loc.EXPECT().List().Return([]string{"a.txt"}, nil)
				loc.EXPECT().NewFile("a.txt").Return(nil, errors.New("bad path"))
			},
			wantErr: "error creating file",
		},
		{
			name: "last modified error",
			setupMocks: func(loc *vfsmocks.Location) {
				loc.EXPECT().List().Return([]string{"a.txt"}, nil)
				file := vfsmocks.NewFile(s.T())
				file.EXPECT().LastModified().Return(nil, errors.New("stat failed"))
				loc.EXPECT().NewFile("a.txt").Return(file, nil)
			},
			wantErr: "error getting last modified time",
		},
		{
			name: "size error",
			setupMocks: func(loc *vfsmocks.Location) {
				loc.EXPECT().List().Return([]string{"a.txt"}, nil)
				hourAgo := time.Now().UTC().Add(-time.Hour)
				file := vfsmocks.NewFile(s.T())
				file.EXPECT().LastModified().Return(&hourAgo, nil)
				file.EXPECT().Size().Return(uint64(0), errors.New("stat failed"))
				loc.EXPECT().NewFile("a.txt").Return(file, nil)
			},
			wantErr: "error getting file size",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			loc := vfsmocks.NewLocation(s.T())
			tt.setupMocks(loc)

			lister, err := vfsource.NewLocationLister(loc)
			s.Require().NoError(err)

			_, err = lister.ListFiles()
			s.Require().Error(err)
			s.ErrorContains(err, tt.wantErr)
		})
	}
}

func (s *locationTestSuite) TestNewLocationRetrieverValidation() {
	staging := vfsmocks.NewLocation(s.T())

	_, err := vfsource.NewLocationRetriever(nil, staging)
	s.ErrorIs(err, vfsource.ErrNilLocation)

	_, err = vfsource.NewLocationRetriever(staging, nil)
	s.ErrorIs(err, vfsource.ErrNilLocation)
}

func (s *locationTestSuite) TestRetrieve() {
	remote := vfsmocks.NewLocation(s.T())
	staging := vfsmocks.NewLocation(s.T())
	// testify formats mock-call arguments with %v, which invokes the mocked
	// String(); stub it so matching CopyToLocation(staging) doesn't fail.
	staging.EXPECT().String().Return("mock://staging/").Maybe()

	remoteFile := vfsmocks.NewFile(s.T())
	staged := vfsmocks.NewFile(s.T())
	remote.EXPECT().NewFile("a.txt").Return(remoteFile, nil)
	remoteFile.EXPECT().CopyToLocation(staging).Return(staged, nil)

	retriever, err := vfsource.NewLocationRetriever(remote, staging)
	s.Require().NoError(err)

	file, err := retriever.Retrieve(vfsource.Descriptor{Name: "a.txt"})
	s.Require().NoError(err)
	s.Equal(staged, file)
}

func (s *locationTestSuite) TestRetrieveCopyError() {
	remote := vfsmocks.NewLocation(s.T())
	staging := vfsmocks.NewLocation(s.T())
	staging.EXPECT().String().Return("mock://staging/").Maybe()

	remoteFile := vfsmocks.NewFile(s.T())
	remote.EXPECT().NewFile("a.txt").Return(remoteFile, nil)
	remoteFile.EXPECT().CopyToLocation(staging).Return(nil, errors.New("disk full"))

	retriever, err := vfsource.NewLocationRetriever(remote, staging)
	s.Require().NoError(err)

	_, err = retriever.Retrieve(vfsource.Descriptor{Name: "a.txt"})
	s.Require().Error(err)
	s.ErrorContains(err, "error copying to staging location")
}

func (s *locationTestSuite) TestNewLocationSource() {
	remote := vfsmocks.NewLocation(s.T())
	staging := vfsmocks.NewLocation(s.T())

	_, err := vfsource.NewLocationSource(nil, staging)
	s.ErrorIs(err, vfsource.ErrNilLocation)

	_, err = vfsource.NewLocationSource(remote, nil)
	s.ErrorIs(err, vfsource.ErrNilLocation)

	src, err := vfsource.NewLocationSource(remote, staging)
	s.NoError(err)
	s.NotNil(src)
}

func (s *locationTestSuite) TestLocationSourceEndToEnd() {
	hourAgo := time.Now().UTC().Add(-time.Hour)
	remote := vfsmocks.NewLocation(s.T())
	staging := vfsmocks.NewLocation(s.T())
	staging.EXPECT().String().Return("mock://staging/").Maybe()

	remote.EXPECT().List().Return([]string{"a.txt"}, nil).Once()

	listFile := vfsmocks.NewFile(s.T())
	listFile.EXPECT().LastModified().Return(&hourAgo, nil)
	listFile.EXPECT().Size().Return(uint64(100), nil)
	remote.EXPECT().NewFile("a.txt").Return(listFile, nil).Once()

	staged := vfsmocks.NewFile(s.T())
	retrieveFile := vfsmocks.NewFile(s.T())
	retrieveFile.EXPECT().CopyToLocation(staging).Return(staged, nil)
	remote.EXPECT().NewFile("a.txt").Return(retrieveFile, nil).Once()

	src, err := vfsource.NewLocationSource(remote, staging)
	s.Require().NoError(err)

	msg, err := src.Receive()
	s.Require().NoError(err)
	s.Require().NotNil(msg)
	s.Len(msg.Files, 1)
	s.Equal("a.txt", msg.Files[0].Descriptor.Name)
	s.Equal(uint64(100), msg.Files[0].Descriptor.Size)
	s.Equal(staged, msg.Files[0].File)
	src.OnSend(msg)
}

func TestLocationTestSuite(t *testing.T) {
	suite.Run(t, new(locationTestSuite))
}
